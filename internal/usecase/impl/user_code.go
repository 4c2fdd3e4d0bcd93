package impl

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"peeko/internal/errors"
)

// userCodeBytes yields six uppercase hex characters.
const userCodeBytes = 3

func generateUserCode() (string, error) {
	buf := make([]byte, userCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for user code")
	}

	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// normalizeCode canonicalises a user code taken from a path or a request body.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
