// Package classify provides deterministic text classification for chat input.
//
// Everything in this package is a pure function over fixed keyword tables and
// regular expressions: budget extraction, event-type detection, filter mining,
// plan-intent detection, and event-name extraction. The tables are ordered and
// evaluated top to bottom; precedence between overlapping keywords (for
// example "corporate party") is resolved by table order alone. Functions never
// fail: absence is reported through ok booleans or zero values.
package classify
