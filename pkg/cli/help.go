package cli

import "microcli/pkg/tokens"

// onHelp implements the built-in help command. With no argument it lists
// every binding; with one argument it shows that binding's help text; more
// arguments is a usage error.
func (c *Cli) onHelp(args []byte) {
	switch tokens.Count(args) {
	case 0:
		for i := range c.bindings {
			b := &c.bindings[i]
			c.writeString(" * ")
			c.writeString(b.Name)
			c.writeString(lineBreak)
			if b.Help != "" {
				c.writeByte('\t')
				c.writeString(b.Help)
				c.writeString(lineBreak)
			}
		}
	case 1:
		name, _ := tokens.Get(args, 1)
		found := false
		help := ""
		for i := range c.bindings {
			if c.bindings[i].Name == name {
				found = true
				help = c.bindings[i].Help
				break
			}
		}
		switch {
		case found && help != "":
			c.writeString(" * ")
			c.writeString(name)
			c.writeString(lineBreak)
			c.writeByte('\t')
			c.writeString(help)
			c.writeString(lineBreak)
		case found:
			c.writeString("Help is not available")
			c.writeString(lineBreak)
		default:
			c.printUnknownCommand(name)
		}
	default:
		c.writeString("Command \"help\" receives one or zero arguments")
		c.writeString(lineBreak)
	}
}
