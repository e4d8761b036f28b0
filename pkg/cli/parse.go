package cli

import (
	"microcli/pkg/clitypes"
	"microcli/pkg/tokens"
)

// parseCommand splits the buffered line into a name and its argument
// remainder, then dispatches. Only the separator run between name and args
// is replaced with terminators; the arguments themselves are tokenized
// lazily, and only for bindings that ask for it.
func (c *Cli) parseCommand() {
	nameStart, nameEnd, argsStart := -1, -1, -1
	nameFinished := false

	for i := 0; i < c.cmdSize; i++ {
		switch {
		case c.cmd[i] == ' ':
			// zero the gap so the name reads as a terminated string
			if argsStart == -1 {
				c.cmd[i] = 0
			}
			if nameStart != -1 && !nameFinished {
				nameEnd = i
				nameFinished = true
			}
		case nameStart == -1:
			nameStart = i
		case argsStart == -1 && nameFinished:
			argsStart = i
		}
	}

	// the two reserved trailing bytes host the end sentinel
	c.cmd[c.cmdSize] = 0
	c.cmd[c.cmdSize+1] = 0

	if nameStart == -1 {
		return
	}
	if nameEnd == -1 {
		nameEnd = c.cmdSize
	}
	name := c.cmd[nameStart:nameEnd]

	// the args view always extends through the sentinel so handlers can
	// tokenize it in place
	var args []byte
	if argsStart != -1 {
		args = c.cmd[argsStart : c.cmdSize+2]
	} else {
		args = c.cmd[c.cmdSize : c.cmdSize+2]
	}

	c.log.Debug("dispatching command", "command", string(name))

	// first match wins; the built-in help binding sits at index 0
	for i := range c.bindings {
		b := &c.bindings[i]
		if b.Name != string(name) {
			continue
		}
		if b.Handler == nil {
			// fall through to the default handler
			break
		}
		if b.TokenizeArgs {
			tokens.Tokenize(args)
		}
		b.Handler(c, args, b.Context)
		return
	}

	if c.onCommand != nil {
		c.onCommand(c, clitypes.Command{Name: string(name), Args: args})
		return
	}
	c.printUnknownCommand(string(name))
}

func (c *Cli) printUnknownCommand(name string) {
	c.writeString("Unknown command: \"")
	c.writeString(name)
	c.writeString("\". Write \"help\" for a list of available commands")
	c.writeString(lineBreak)
}
