package index

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/talentbridge/core"
)

// ProviderText renders a provider profile as the document text that gets
// embedded. Query and document vectors must come from the same text shape,
// so both backends share this function.
func ProviderText(p core.Provider) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString(" is a ")
	sb.WriteString(p.Category)
	sb.WriteString(" in ")
	sb.WriteString(p.Location)
	sb.WriteString(". Skills: ")
	sb.WriteString(strings.Join(p.Skills, ", "))
	sb.WriteString(". Price: $")
	sb.WriteString(strconv.Itoa(p.PriceMin))
	sb.WriteString(" to $")
	sb.WriteString(strconv.Itoa(p.PriceMax))
	sb.WriteString(". Rating: ")
	sb.WriteString(fmt.Sprintf("%g", p.Rating))
	sb.WriteString(". Available for: ")
	sb.WriteString(strings.Join(p.EventTypes, ", "))
	sb.WriteString(". ")
	sb.WriteString(p.Bio)
	return sb.String()
}
