// Package cli implements a self-contained command-line engine for byte
// stream interfaces such as a serial port. It ingests raw bytes one at a
// time, performs terminal-style line editing (echo, backspace, prefix
// autocompletion), parses completed lines and dispatches them to registered
// handlers. All storage is sized at construction and nothing grows
// afterwards, so the engine suits poll-driven, single-threaded targets.
//
// Two entry points are meant for different execution contexts: ReceiveByte
// for the producer (e.g. a receive interrupt) and Process for the consumer
// loop. They share only the receive ring buffer.
package cli

import (
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"microcli/internal/arena"
	"microcli/internal/fifo"
	"microcli/internal/history"
	"microcli/internal/logger"
	"microcli/pkg/clitypes"
)

const (
	lineBreak         = "\r\n"
	defaultInvitation = "> "

	escByte = 0x1B
	delByte = 0x7F

	// trailing command-buffer bytes reserved for the tokenizer's end sentinel
	cmdReserve = 2

	// registry slots the engine itself occupies (the built-in help command)
	internalBindingCount = 1
)

// ErrConfig is returned when a configuration's capacities are unusable.
var ErrConfig = errors.New("cli: invalid configuration")

// ErrBufferTooSmall is returned when a caller-supplied storage block cannot
// hold the layout RequiredSize computes for the configuration.
var ErrBufferTooSmall = arena.ErrBufferTooSmall

// Cli is one engine instance driving one input/output stream. Create it
// with New or NewDefault; the zero value is unusable.
type Cli struct {
	writeFn   clitypes.WriteFunc
	onCommand clitypes.CommandFunc

	invitation string

	arena   *arena.Arena
	rx      fifo.Buf
	cmd     []byte
	cmdSize int

	bindings []clitypes.Binding
	marks    []byte

	hist history.Store

	lastByte   byte
	escapeMode bool
	initDone   bool

	// rendered length of the line past the invitation, including any live
	// completion preview
	lineLen int

	// set by the producer on a failed push, cleared by the consumer
	overflow atomic.Bool

	log *log.Logger
}

// RequiredSize returns the storage in bytes that New needs for the given
// configuration. Callers supplying their own block size it with this.
func RequiredSize(cfg clitypes.Config) int {
	bindingCount := cfg.MaxBindingCount + internalBindingCount
	return cfg.RxBufferSize + cfg.CmdBufferSize + bindingCount + cfg.HistoryBufferSize
}

// New creates an engine from the configuration. When cfg.Buffer is set it
// must hold at least RequiredSize(cfg) bytes or construction fails and the
// block is left untouched; when nil the engine allocates and owns its
// storage. No allocation happens after New returns.
func New(cfg clitypes.Config) (*Cli, error) {
	if cfg.RxBufferSize < 2 || cfg.CmdBufferSize <= cmdReserve ||
		cfg.HistoryBufferSize < 0 || cfg.MaxBindingCount < 0 {
		return nil, ErrConfig
	}

	bindingCount := cfg.MaxBindingCount + internalBindingCount
	required := RequiredSize(cfg)

	var a *arena.Arena
	if cfg.Buffer != nil {
		var err error
		a, err = arena.FromBuffer(cfg.Buffer, required)
		if err != nil {
			return nil, err
		}
	} else {
		a = arena.New(required)
	}

	// carve order is fixed: rx ring, command buffer, per-binding candidate
	// marks, history
	rxRegion, ok1 := a.Carve(cfg.RxBufferSize)
	cmdRegion, ok2 := a.Carve(cfg.CmdBufferSize)
	marks, ok3 := a.Carve(bindingCount)
	histRegion, ok4 := a.Carve(cfg.HistoryBufferSize)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil, ErrConfig
	}

	c := &Cli{
		invitation: defaultInvitation,
		arena:      a,
		cmd:        cmdRegion,
		bindings:   make([]clitypes.Binding, 0, bindingCount),
		marks:      marks,
		log:        logger.NewStyledLogger("Engine"),
	}
	c.rx.Init(rxRegion)
	c.hist.Init(histRegion)

	// the built-in help binding always occupies the first registry slot,
	// so a later registration of the same name can never shadow it
	c.bindings = append(c.bindings, clitypes.Binding{
		Name:         "help",
		Help:         "Print list of commands",
		TokenizeArgs: true,
		Handler: func(_ clitypes.Printer, args []byte, _ any) {
			c.onHelp(args)
		},
	})

	c.log.Debug("engine created", "required", required, "ownedStorage", cfg.Buffer == nil)
	return c, nil
}

// NewDefault creates an engine with DefaultConfig.
func NewDefault() *Cli {
	c, err := New(clitypes.DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid and self-allocates
		panic(err)
	}
	return c
}

// Close releases self-owned storage. Caller-supplied storage is left
// exactly as the engine last wrote it. The engine is unusable afterwards.
func (c *Cli) Close() {
	c.arena.Release()
}

// SetOutput installs the single-byte output sink. Until one is installed
// the engine's output is discarded.
func (c *Cli) SetOutput(w clitypes.WriteFunc) {
	c.writeFn = w
}

// SetDefaultHandler installs the catch-all invoked with the untokenized
// (name, args) when no binding matches a submitted command.
func (c *Cli) SetDefaultHandler(f clitypes.CommandFunc) {
	c.onCommand = f
}

// SetInvitation replaces the prompt string printed at the start of each
// editable line. The default is "> ".
func (c *Cli) SetInvitation(s string) {
	c.invitation = s
}

// Invitation returns the current prompt string.
func (c *Cli) Invitation() string {
	return c.invitation
}

// AddBinding registers a named command. It fails without mutating anything
// when the name is empty or when registry capacity, including the slot held
// by the built-in help command, is exhausted.
func (c *Cli) AddBinding(b clitypes.Binding) bool {
	if b.Name == "" || len(c.bindings) == cap(c.bindings) {
		return false
	}
	c.bindings = append(c.bindings, b)
	return true
}

// ReceiveByte appends one incoming byte to the receive ring buffer. It is
// the producer-side entry point and never blocks: on a full buffer the byte
// is dropped and a sticky overflow flag is set, to be recovered by the next
// Process cycle.
func (c *Cli) ReceiveByte(b byte) {
	if !c.rx.Push(b) {
		c.overflow.Store(true)
	}
}

// ReceiveString feeds every byte of s through ReceiveByte.
func (c *Cli) ReceiveString(s string) {
	for i := 0; i < len(s); i++ {
		c.ReceiveByte(s[i])
	}
}

// History returns the submitted line with the given 1-based rank, 1 being
// the most recent. Rank 0 or a rank past the oldest surviving entry yields
// ok == false.
func (c *Cli) History(item int) (string, bool) {
	entry, ok := c.hist.Get(item)
	if !ok {
		return "", false
	}
	return string(entry), true
}

// HistoryCount returns the number of surviving history entries.
func (c *Cli) HistoryCount() int {
	return c.hist.Count()
}
