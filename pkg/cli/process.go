package cli

// Process drains the receive ring buffer completely and handles every byte
// in arrival order. It is the consumer-side entry point, meant to be polled
// from the main loop. The first call prints the invitation. A caller feeding
// bytes faster than it polls makes a single call run proportionally long;
// that tradeoff keeps the loop trivial.
func (c *Cli) Process() {
	if !c.initDone {
		c.initDone = true
		c.writeString(c.invitation)
	}

	for c.rx.Available() > 0 {
		b := c.rx.Pop()

		switch {
		case c.escapeMode:
			c.onEscaped(b)
		case c.lastByte == escByte && b == '[':
			c.escapeMode = true
		case isControl(b):
			c.onControl(b)
		case isPrintable(b):
			c.onChar(b)
		}

		c.renderLivePreview(c.cmdSize)
		c.lastByte = b
	}

	if c.overflow.Swap(false) {
		// sole overflow recovery: the unterminated line is lost, completed
		// lines before it are unaffected
		c.log.Debug("receive overflow, discarding in-flight line", "bytes", c.cmdSize)
		c.cmdSize = 0
	}
}

// onEscaped consumes one byte of an ESC [ sequence. Any byte in 0x40..0x7E
// is the sequence's final byte; the sequence content is swallowed, never
// interpreted.
func (c *Cli) onEscaped(b byte) {
	if b >= 0x40 && b <= 0x7E {
		c.escapeMode = false
	}
}

// onControl handles CR, LF, backspace, DEL and TAB.
func (c *Cli) onControl(b byte) {
	// adjacent CR LF or LF CR pairs collapse into a single terminator;
	// repeats of the same byte do not
	if (c.lastByte == '\r' && b == '\n') ||
		(c.lastByte == '\n' && b == '\r') {
		return
	}

	switch {
	case b == '\r' || b == '\n':
		c.writeString(lineBreak)
		if c.cmdSize > 0 {
			c.hist.Put(c.cmd[:c.cmdSize])
			c.parseCommand()
		}
		c.cmdSize = 0
		c.lineLen = 0
		c.writeString(c.invitation)
	case (b == '\b' || b == delByte) && c.cmdSize > 0:
		// erase one column on screen and one byte from the buffer
		c.writeByte('\b')
		c.writeByte(' ')
		c.writeByte('\b')
		c.cmdSize--
	case b == '\t':
		c.onAutocompleteRequest()
	}
}

// onChar appends a printable byte to the command buffer and echoes it. The
// byte is dropped when appending would eat into the reserved trailing
// slots.
func (c *Cli) onChar(b byte) {
	if c.cmdSize+cmdReserve >= len(c.cmd) {
		return
	}
	c.cmd[c.cmdSize] = b
	c.cmdSize++
	c.writeByte(b)
}

func isControl(b byte) bool {
	return b == '\r' || b == '\n' || b == '\b' || b == '\t' || b == delByte
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}
