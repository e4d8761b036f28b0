// Package clitypes defines the public types shared between the microcli
// engine and the applications that embed it. It contains only plain data
// types and function signatures so that embedders never need to import the
// engine's internal packages.
package clitypes

// WriteFunc is the engine's output sink. The engine performs no raw I/O
// itself; every byte it emits (echo, prompts, notices) goes through this
// callback. It must never block.
type WriteFunc func(b byte)

// Printer is the surface handed to command handlers for asynchronous output.
// Printing through it preserves the line currently being edited.
type Printer interface {
	Print(s string)
}

// Command is a parsed input line handed to the default catch-all handler
// when no binding matched.
type Command struct {
	// Name is the first token of the line. In "set led 1 1", Name is "set".
	Name string

	// Args holds everything after the name, ended with a double terminator.
	// It is a view into the engine's command buffer and is only valid for
	// the duration of the callback. Use pkg/tokens to split it further.
	Args []byte
}

// ArgsString returns the argument text up to the first terminator.
func (c Command) ArgsString() string {
	for i, b := range c.Args {
		if b == 0 {
			return string(c.Args[:i])
		}
	}
	return string(c.Args)
}

// BindingFunc handles a dispatched command. args is the argument region of
// the command buffer: raw text if the binding does not tokenize, a
// terminator-separated token list otherwise. ctx is the opaque value stored
// in the binding.
type BindingFunc func(p Printer, args []byte, ctx any)

// CommandFunc is the default catch-all handler invoked when no binding
// matches the submitted name. Arguments are never tokenized on this path.
type CommandFunc func(p Printer, cmd Command)

// Binding associates a command name with its handler.
type Binding struct {
	// Name of the command. Must not be empty.
	Name string

	// Help text shown by the built-in help command. May span multiple
	// lines separated by "\r\n". Empty means no help is available.
	Help string

	// TokenizeArgs requests that the argument string is tokenized in
	// place before the handler runs.
	TokenizeArgs bool

	// Context is an opaque value passed back to the handler.
	Context any

	// Handler runs when the command is dispatched. A nil handler routes
	// the command to the default catch-all instead.
	Handler BindingFunc
}

// Config holds the capacities the engine's storage is sized from. All
// capacities are fixed at construction; nothing grows afterwards.
type Config struct {
	// RxBufferSize is the capacity of the receive ring buffer in bytes.
	// One slot is always kept empty, so usable capacity is one less.
	RxBufferSize int

	// CmdBufferSize is the capacity of the command line buffer in bytes.
	// Two trailing bytes are reserved for the tokenizer's end sentinel.
	CmdBufferSize int

	// HistoryBufferSize is the capacity of the history buffer in bytes.
	HistoryBufferSize int

	// MaxBindingCount is the number of user bindings that can be
	// registered. One extra slot is always reserved for the built-in
	// help command.
	MaxBindingCount int

	// Buffer optionally supplies caller-owned storage for every engine
	// region. Construction fails if it is smaller than RequiredSize for
	// this configuration. When nil the engine allocates and owns its
	// storage.
	Buffer []byte
}

// DefaultConfig returns a fresh default configuration. The returned value
// is owned by the caller and safe to modify.
func DefaultConfig() Config {
	return Config{
		RxBufferSize:      64,
		CmdBufferSize:     64,
		HistoryBufferSize: 128,
		MaxBindingCount:   8,
	}
}
