// Package tokens provides in-place tokenization of space-separated argument
// strings and accessors over the tokenized form. Tokens are separated by a
// single terminator byte and the list ends with a double terminator, so a
// tokenized string never needs storage beyond its original length plus one
// spare byte.
//
// The functions are exported standalone so command handlers can tokenize
// their own argument strings.
package tokens

// separator is the only recognized token separator.
const separator = ' '

// Tokenize rewrites the terminator-ended string at the start of buf into a
// sequence of terminator-separated tokens followed by one extra terminator.
// buf must extend at least one writable byte past the string's terminator.
// Runs of separators collapse to a single terminator and leading separators
// are stripped, so the result begins directly with the first token. An empty
// or all-separator string collapses to the double terminator.
//
// Call this only once per string: repeated calls lose token boundaries.
func Tokenize(buf []byte) {
	if len(buf) < 2 {
		return
	}

	n := textLen(buf)
	if n+1 >= len(buf) {
		// no spare byte for the end-of-tokens terminator
		return
	}
	buf[n+1] = 0
	if n == 0 {
		return
	}

	for i := 0; i < n; i++ {
		if buf[i] == separator {
			buf[i] = 0
		}
	}

	// Compress runs of terminators right to left. nextTokenStart tracks the
	// first byte of the most recently seen token so finished tokens on the
	// right can be shifted up against the current one.
	nextTokenStart := 0
	for i := n - 1; i >= 0; i-- {
		isSep := buf[i] == 0
		if !isSep && buf[i+1] == 0 {
			if nextTokenStart != 0 && nextTokenStart-i > 2 {
				copy(buf[i+2:], buf[nextTokenStart:n+1])
			}
		} else if isSep && buf[i+1] != 0 {
			nextTokenStart = i + 1
		}
	}

	if buf[0] == 0 && nextTokenStart > 0 {
		copy(buf, buf[nextTokenStart:n+1])
	}
}

// Get returns the token at the given 1-based position. Position 0 or a
// position past the last token yields ok == false.
func Get(tokenized []byte, pos int) (string, bool) {
	if len(tokenized) == 0 || pos <= 0 {
		return "", false
	}

	i := 0
	count := 1
	for count != pos {
		if i+1 >= len(tokenized) {
			return "", false
		}
		if tokenized[i] == 0 {
			count++
			if tokenized[i+1] == 0 {
				break
			}
		}
		i++
	}

	if i >= len(tokenized) || tokenized[i] == 0 {
		return "", false
	}
	end := i
	for end < len(tokenized) && tokenized[end] != 0 {
		end++
	}
	return string(tokenized[i:end]), true
}

// Count returns the number of tokens in a tokenized string.
func Count(tokenized []byte) int {
	if len(tokenized) == 0 || tokenized[0] == 0 {
		return 0
	}

	i := 0
	count := 1
	for {
		if i+1 >= len(tokenized) {
			break
		}
		if tokenized[i] == 0 {
			if tokenized[i+1] == 0 {
				break
			}
			count++
		}
		i++
	}
	return count
}

// Find returns the 1-based position of the first token equal to the given
// value, or 0 if no token matches.
func Find(tokenized []byte, token string) int {
	count := Count(tokenized)
	for i := 1; i <= count; i++ {
		if t, ok := Get(tokenized, i); ok && t == token {
			return i
		}
	}
	return 0
}

// textLen returns the length of the terminator-ended string at the start of
// buf, or len(buf) when no terminator is present.
func textLen(buf []byte) int {
	for i, b := range buf {
		if b == 0 {
			return i
		}
	}
	return len(buf)
}
