// Package mock provides test double implementations of the ai interfaces.
//
// MockEmbedder returns deterministic vectors derived from a hash of the input
// text, so similarity tests run without an embedding service and produce the
// same ranking on every run. Custom behavior can be injected through the
// function fields.
package mock
