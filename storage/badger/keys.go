package badger

import (
	"fmt"
	"strings"

	"github.com/poiesic/talentbridge/core"
)

// Key prefixes for different data types
const (
	accountPrefix      = "accrec"
	accountEmailPrefix = "accem"
	accountIDSeq       = "accrecseq"
)

// makeAccountKey generates a key for an account by ID.
func makeAccountKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", accountPrefix, id))
}

// makeAccountEmailKey generates a key for the email index.
// Emails are lowercased so lookups are case-insensitive.
func makeAccountEmailKey(email string) []byte {
	return []byte(accountEmailPrefix + ":" + strings.ToLower(email))
}
