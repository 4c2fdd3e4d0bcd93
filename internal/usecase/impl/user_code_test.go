package impl

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUserCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9A-F]{6}$`)

	seen := make(map[string]struct{})
	for range 50 {
		code, err := generateUserCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "A1B2C3", normalizeCode("  a1b2c3 "))
	assert.Equal(t, "", normalizeCode("   "))
}
