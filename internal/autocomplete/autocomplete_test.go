package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"microcli/pkg/clitypes"
)

func bindingsFor(names ...string) []clitypes.Binding {
	out := make([]clitypes.Binding, 0, len(names))
	for _, n := range names {
		out = append(out, clitypes.Binding{Name: n})
	}
	return out
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name       string
		bindings   []string
		prefix     string
		wantFirst  string
		wantShared int
		wantCount  int
	}{
		{
			name:       "single candidate completes fully",
			bindings:   []string{"help", "get-led", "set"},
			prefix:     "h",
			wantFirst:  "help",
			wantShared: 4,
			wantCount:  1,
		},
		{
			name:       "two candidates share an extension",
			bindings:   []string{"get-led", "get-adc"},
			prefix:     "g",
			wantFirst:  "get-led",
			wantShared: 4,
			wantCount:  2,
		},
		{
			name:       "no unambiguous extension",
			bindings:   []string{"get-led", "get-adc"},
			prefix:     "get-",
			wantFirst:  "get-led",
			wantShared: 4,
			wantCount:  2,
		},
		{
			name:       "shared length bounded by shortest candidate",
			bindings:   []string{"getter", "get"},
			prefix:     "ge",
			wantFirst:  "getter",
			wantShared: 3,
			wantCount:  2,
		},
		{
			name:      "no candidates",
			bindings:  []string{"help", "set"},
			prefix:    "x",
			wantCount: 0,
		},
		{
			name:      "empty prefix",
			bindings:  []string{"help", "set"},
			prefix:    "",
			wantCount: 0,
		},
		{
			name:      "case sensitive",
			bindings:  []string{"Help"},
			prefix:    "h",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bindings := bindingsFor(tt.bindings...)
			marks := make([]byte, len(bindings))

			res := Query(bindings, []byte(tt.prefix), marks)

			assert.Equal(t, tt.wantCount, res.Count)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, res.First)
				assert.Equal(t, tt.wantShared, res.SharedLen)
			}
		})
	}
}

func TestQuery_MarksCandidates(t *testing.T) {
	bindings := bindingsFor("get-led", "set", "get-adc")
	marks := make([]byte, len(bindings))

	Query(bindings, []byte("get"), marks)
	assert.Equal(t, []byte{1, 0, 1}, marks)

	// marks are recomputed, not accumulated
	Query(bindings, []byte("set"), marks)
	assert.Equal(t, []byte{0, 1, 0}, marks)

	Query(bindings, []byte(""), marks)
	assert.Equal(t, []byte{0, 0, 0}, marks)
}
