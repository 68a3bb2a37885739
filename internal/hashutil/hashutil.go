package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// ShortID derives a deterministic 7-character hex ID from a seed string.
func ShortID(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
