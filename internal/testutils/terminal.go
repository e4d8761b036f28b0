// Package testutils provides deterministic helpers for exercising the
// engine in tests. TerminalMock plays the role of the serial terminal on
// the other end of the byte stream: it feeds input through the producer
// entry point and captures everything the engine writes back.
package testutils

import (
	"bytes"

	"microcli/pkg/cli"
	"microcli/pkg/clitypes"
)

// ReceivedCommand records one dispatch of the default catch-all handler.
type ReceivedCommand struct {
	Name string
	Args string
}

// TerminalMock wires an engine to an in-memory terminal. The default
// handler records every unmatched command in Commands.
type TerminalMock struct {
	Cli      *cli.Cli
	Commands []ReceivedCommand

	out bytes.Buffer
}

// NewTerminalMock creates an engine from cfg and attaches the mock to it.
func NewTerminalMock(cfg clitypes.Config) (*TerminalMock, error) {
	c, err := cli.New(cfg)
	if err != nil {
		return nil, err
	}
	m := &TerminalMock{Cli: c}
	c.SetOutput(func(b byte) {
		m.out.WriteByte(b)
	})
	c.SetDefaultHandler(func(_ clitypes.Printer, cmd clitypes.Command) {
		m.Commands = append(m.Commands, ReceivedCommand{
			Name: cmd.Name,
			Args: cmd.ArgsString(),
		})
	})
	return m, nil
}

// SendString feeds every byte of s through the producer entry point.
func (m *TerminalMock) SendString(s string) {
	m.Cli.ReceiveString(s)
}

// SendLine feeds s followed by a line terminator.
func (m *TerminalMock) SendLine(s string) {
	m.Cli.ReceiveString(s + "\n")
}

// Output returns everything the engine has written so far.
func (m *TerminalMock) Output() string {
	return m.out.String()
}

// ResetOutput discards captured output.
func (m *TerminalMock) ResetOutput() {
	m.out.Reset()
}

// LastCommand returns the most recently recorded command, or ok == false
// when nothing was dispatched to the default handler yet.
func (m *TerminalMock) LastCommand() (ReceivedCommand, bool) {
	if len(m.Commands) == 0 {
		return ReceivedCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}
