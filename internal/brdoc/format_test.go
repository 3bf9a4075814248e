package brdoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-service/internal/brdoc"
)

func TestFormatCPF(t *testing.T) {
	t.Run("formats normalized input", func(t *testing.T) {
		testCases := map[string]string{
			"52998224725":    "529.982.247-25",
			"529.982.247-25": "529.982.247-25",
			"529982247-25":   "529.982.247-25",
			"11111111111":    "111.111.111-11",
			"abcdefghijk":    "abc.def.ghi-jk",
		}

		for input, expected := range testCases {
			formatted, err := brdoc.FormatCPF(input)
			require.NoError(t, err, "input: %q", input)
			assert.Equal(t, expected, formatted)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, input := range []string{"52998224725", "12345678909", "00000000000"} {
			once, err := brdoc.FormatCPF(input)
			require.NoError(t, err)

			twice, err := brdoc.FormatCPF(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})

	t.Run("keeps original bytes", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{strings.Repeat("\xff", 11), "\xff\xff\xff.\xff\xff\xff.\xff\xff\xff-\xff\xff"},
			{"529\xff\xfe982247", "529.\xff\xfe9.822-47"},
			{"ááábbbcccdd", "ááá.bbb.ccc-dd"},
		}

		for _, tc := range testCases {
			formatted, err := brdoc.FormatCPF(tc.input)
			require.NoError(t, err, "input: %q", tc.input)
			assert.Equal(t, tc.expected, formatted)
		}
	})

	t.Run("wrong length fails explicitly", func(t *testing.T) {
		for _, input := range []string{"", "123", "529.982.247-2", "5299822472512"} {
			formatted, err := brdoc.FormatCPF(input)
			assert.Empty(t, formatted)
			assert.ErrorIs(t, err, brdoc.ErrInvalidCPFLength, "input: %q", input)
		}
	})
}

func TestStripPunctuation(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"529.982.247-25", "52998224725"},
		{"a.B-c", "aBc"},
		{"...---", ""},
		{"ABC-1234", "ABC1234"},
		{"sem pontuação", "sem pontuação"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, brdoc.StripPunctuation(tc.input))
	}
}
