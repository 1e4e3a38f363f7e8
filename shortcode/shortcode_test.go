package shortcode

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	t.Run("MatchesExpectedShape", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			assert.Regexp(t, codePattern, code)
		}
	})

	t.Run("ProducesVariedOutput", func(t *testing.T) {
		seen := make(map[string]struct{})
		const samples = 1000
		for i := 0; i < samples; i++ {
			code, err := gen.Generate()
			require.NoError(t, err)
			seen[code] = struct{}{}
		}
		// With a 62^6 code space, 1000 draws colliding at all is
		// astronomically unlikely; allow a little slack anyway.
		assert.Greater(t, len(seen), samples-5)
	})

	t.Run("UsesOnlyCharsetCharacters", func(t *testing.T) {
		code, err := gen.Generate()
		require.NoError(t, err)
		for _, ch := range code {
			assert.Contains(t, charset, string(ch))
		}
	})
}

func TestReserved(t *testing.T) {
	assert.True(t, Reserved("health"), "a code equal to the health route would never resolve")
	assert.False(t, Reserved("Ab3xY9"))
	assert.False(t, Reserved("HEALTH"), "codes are case sensitive, only the exact route word is reserved")
}
