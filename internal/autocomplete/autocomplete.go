// Package autocomplete computes completion candidates for a command prefix.
// A query is a single pass over the registry; its result is ephemeral and
// recomputed from scratch on every call, never persisted on the bindings.
package autocomplete

import "microcli/pkg/clitypes"

// Result describes the candidate set for one query.
type Result struct {
	// First is the name of the first candidate encountered in registry
	// order. Empty when there are no candidates.
	First string

	// SharedLen is the number of leading bytes shared by every candidate.
	// With a single candidate it equals that candidate's length.
	SharedLen int

	// Count is the total number of candidates.
	Count int
}

// Query scans bindings for names that start with prefix (case-sensitive,
// byte-exact). marks must be at least len(bindings) long; marks[i] is set to
// 1 when bindings[i] is a candidate and 0 otherwise, and is only meaningful
// until the next call. An empty prefix yields an empty result.
func Query(bindings []clitypes.Binding, prefix []byte, marks []byte) Result {
	var res Result

	plen := len(prefix)
	if len(bindings) == 0 || plen == 0 {
		for i := range bindings {
			marks[i] = 0
		}
		return res
	}

	for i := range bindings {
		name := bindings[i].Name
		marks[i] = 0

		if len(name) < plen || name[:plen] != string(prefix) {
			continue
		}
		marks[i] = 1

		if res.Count == 0 || len(name) < res.SharedLen {
			res.SharedLen = len(name)
		}
		res.Count++

		if res.Count == 1 {
			res.First = name
			continue
		}

		// shrink the shared extension at the first divergent byte
		for j := plen; j < res.SharedLen; j++ {
			if res.First[j] != name[j] {
				res.SharedLen = j
				break
			}
		}
	}

	return res
}
