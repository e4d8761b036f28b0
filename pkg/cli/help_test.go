package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microcli/pkg/clitypes"
)

func TestHelp_ListsAllBindings(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())
	require.True(t, m.Cli.AddBinding(clitypes.Binding{Name: "led", Help: "Control the led"}))
	require.True(t, m.Cli.AddBinding(clitypes.Binding{Name: "adc"}))

	m.SendLine("help")
	m.Cli.Process()

	out := m.Output()
	assert.Contains(t, out, " * help\r\n\tPrint list of commands\r\n")
	assert.Contains(t, out, " * led\r\n\tControl the led\r\n")
	assert.Contains(t, out, " * adc\r\n")
}

func TestHelp_Topic(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())
	require.True(t, m.Cli.AddBinding(clitypes.Binding{Name: "led", Help: "Control the led"}))

	m.SendLine("help led")
	m.Cli.Process()

	assert.Contains(t, m.Output(), " * led\r\n\tControl the led\r\n")
}

func TestHelp_TopicWithoutHelpText(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())
	require.True(t, m.Cli.AddBinding(clitypes.Binding{Name: "adc"}))

	m.SendLine("help adc")
	m.Cli.Process()

	assert.Contains(t, m.Output(), "Help is not available\r\n")
}

func TestHelp_UnknownTopic(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())

	m.SendLine("help missing")
	m.Cli.Process()

	assert.Contains(t, m.Output(), `Unknown command: "missing"`)
}

func TestHelp_TooManyArguments(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())

	m.SendLine("help one two")
	m.Cli.Process()

	assert.Contains(t, m.Output(), `Command "help" receives one or zero arguments`)
}

func TestHelp_CannotBeShadowed(t *testing.T) {
	m := newMock(t, clitypes.DefaultConfig())

	shadowCalled := false
	require.True(t, m.Cli.AddBinding(clitypes.Binding{
		Name: "help",
		Handler: func(_ clitypes.Printer, _ []byte, _ any) {
			shadowCalled = true
		},
	}))

	m.SendLine("help")
	m.Cli.Process()

	// lookup is first-match and the built-in binding was registered first
	assert.False(t, shadowCalled)
	assert.Contains(t, m.Output(), " * help\r\n")
}
