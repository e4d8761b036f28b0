package cli

import (
	"bytes"

	"microcli/internal/autocomplete"
)

func (c *Cli) writeByte(b byte) {
	if c.writeFn != nil {
		c.writeFn(b)
	}
}

func (c *Cli) write(p []byte) {
	for _, b := range p {
		c.writeByte(b)
	}
}

func (c *Cli) writeString(s string) {
	for i := 0; i < len(s); i++ {
		c.writeByte(s[i])
	}
}

// clearInputLine blanks the invitation plus everything rendered after it
// and parks the cursor at the start of the line.
func (c *Cli) clearInputLine() {
	n := len(c.invitation) + c.lineLen
	c.writeByte('\r')
	for i := 0; i < n; i++ {
		c.writeByte(' ')
	}
	c.writeByte('\r')
	c.lineLen = 0
}

// renderLivePreview draws the unambiguous completion suffix after the typed
// text, erases whatever longer content a previous redraw left behind, and
// reprints the line so the cursor lands right after the genuine input. The
// preview is visual only; the command buffer is never touched. n is the
// length of the buffer prefix currently on screen, normally cmdSize.
func (c *Cli) renderLivePreview(n int) {
	res := autocomplete.Query(c.bindings, c.cmd[:n], c.marks)

	if res.Count == 0 {
		if c.lineLen > n {
			c.clearInputLine()
			c.writeString(c.invitation)
			c.write(c.cmd[:n])
		}
		c.lineLen = n
		return
	}

	for i := n; i < res.SharedLen; i++ {
		c.writeByte(res.First[i])
	}
	for i := res.SharedLen; i < c.lineLen; i++ {
		c.writeByte(' ')
	}
	c.lineLen = res.SharedLen
	c.writeByte('\r')
	c.writeString(c.invitation)
	c.write(c.cmd[:n])
}

// onAutocompleteRequest handles an explicit TAB. A single candidate is
// committed into the buffer with a trailing space; multiple candidates
// commit their shared extension, or are listed in full when no unambiguous
// extension is left.
func (c *Cli) onAutocompleteRequest() {
	res := autocomplete.Query(c.bindings, c.cmd[:c.cmdSize], c.marks)
	if res.Count == 0 {
		return
	}

	if res.Count == 1 {
		if res.SharedLen+1+cmdReserve > len(c.cmd) {
			// committed name plus priming space would eat the reserved slots
			return
		}
		for i := c.cmdSize; i < res.SharedLen; i++ {
			b := res.First[i]
			c.writeByte(b)
			c.cmd[i] = b
		}
		c.writeByte(' ')
		c.cmd[res.SharedLen] = ' '
		c.cmdSize = res.SharedLen + 1
		c.lineLen = c.cmdSize
		return
	}

	if res.SharedLen == c.cmdSize {
		// no unambiguous extension; list the candidates marked by the
		// query above and redraw the line
		c.clearInputLine()
		for i := range c.bindings {
			if c.marks[i] == 0 {
				continue
			}
			c.writeString(c.bindings[i].Name)
			c.writeString(lineBreak)
		}
		c.writeString(c.invitation)
		c.write(c.cmd[:c.cmdSize])
	} else {
		if res.SharedLen+cmdReserve > len(c.cmd) {
			return
		}
		// commit only the shared extension; no trailing space since more
		// typing is needed to disambiguate
		for i := c.cmdSize; i < res.SharedLen; i++ {
			b := res.First[i]
			c.writeByte(b)
			c.cmd[i] = b
		}
		c.cmdSize = res.SharedLen
	}
	c.lineLen = c.cmdSize
}

// Print writes an asynchronous message without corrupting the line being
// edited: the line is cleared, the message printed, then the invitation,
// buffered command and live preview are restored exactly as they were.
func (c *Cli) Print(s string) {
	c.clearInputLine()
	c.writeString(s)
	c.writeString(lineBreak)

	// a handler calling Print mid-dispatch sees the parsed buffer, where a
	// terminator has replaced the separator run after the name; only the
	// text before the first terminator is restorable line content
	n := c.cmdSize
	if i := bytes.IndexByte(c.cmd[:n], 0); i >= 0 {
		n = i
	}
	c.writeString(c.invitation)
	c.write(c.cmd[:n])
	c.lineLen = n
	c.renderLivePreview(n)
}
