package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenizeString places str in a fixed buffer with spare room and runs
// Tokenize over it, mirroring how the engine hands argument regions over.
func tokenizeString(str string) []byte {
	buf := make([]byte, len(str)+2)
	copy(buf, str)
	Tokenize(buf)
	return buf
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple string",
			input: "a b c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "duplicated separators",
			input: "   a  b    c   ",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "long tokens",
			input: "abcd ef",
			want:  []string{"abcd", "ef"},
		},
		{
			name:  "single token",
			input: "abcd",
			want:  []string{"abcd"},
		},
		{
			name:  "separators only",
			input: "      ",
			want:  nil,
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tokenizeString(tt.input)

			require.Equal(t, len(tt.want), Count(buf))
			for i, want := range tt.want {
				got, ok := Get(buf, i+1)
				require.True(t, ok)
				assert.Equal(t, want, got)
			}

			// list ends with the double terminator
			_, ok := Get(buf, len(tt.want)+1)
			assert.False(t, ok)
		})
	}
}

func TestTokenize_ExactLayout(t *testing.T) {
	buf := tokenizeString("a b c")

	want := []byte{'a', 0, 'b', 0, 'c', 0, 0}
	assert.Equal(t, want, buf[:len(want)])
}

func TestTokenize_NoOpWithoutSpareByte(t *testing.T) {
	// the terminator is the last byte, so there is no room for the
	// end-of-tokens sentinel and the buffer must stay untouched
	buf := []byte{'a', ' ', 'b', 0}
	Tokenize(buf)
	assert.Equal(t, []byte{'a', ' ', 'b', 0}, buf)
}

func TestGet_PositionZero(t *testing.T) {
	buf := tokenizeString("a b c")

	_, ok := Get(buf, 0)
	assert.False(t, ok)
}

func TestGet_OutOfRange(t *testing.T) {
	buf := tokenizeString("a b c")

	_, ok := Get(buf, 4)
	assert.False(t, ok)
}

func TestGet_EmptyString(t *testing.T) {
	buf := tokenizeString("")

	_, ok := Get(buf, 1)
	assert.False(t, ok)
}

func TestGet_NilBuffer(t *testing.T) {
	_, ok := Get(nil, 1)
	assert.False(t, ok)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count(tokenizeString("a b c")))
	assert.Equal(t, 0, Count(tokenizeString("")))
	assert.Equal(t, 0, Count(nil))
}

func TestFind(t *testing.T) {
	buf := tokenizeString("led adc pwm")

	assert.Equal(t, 1, Find(buf, "led"))
	assert.Equal(t, 2, Find(buf, "adc"))
	assert.Equal(t, 3, Find(buf, "pwm"))
	assert.Equal(t, 0, Find(buf, "uart"))
	assert.Equal(t, 0, Find(nil, "led"))
}
