// Package main provides the microcli demo application entry point. It runs
// the engine interactively over stdin/stdout in raw mode, standing in for
// the serial link the engine usually sits on.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"microcli/internal/logger"
	"microcli/pkg/cli"
	"microcli/pkg/clitypes"
	"microcli/pkg/tokens"
)

var (
	logLevel string
	logFile  string
	version  = "0.1.0" // This could be set at build time
)

// rootCmd runs the interactive demo when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "microcli",
	Short: "microcli - fixed-storage command line engine demo",
	Long: `microcli drives the embedded-style command line engine over the current
terminal. Everything the engine does (echo, editing, completion, history)
happens through a single-byte output callback, exactly as it would over a
serial port.`,
	RunE: runDemo,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("microcli v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")

	rootCmd.Flags().Int("rx-buffer", 64, "Receive ring buffer capacity in bytes")
	rootCmd.Flags().Int("cmd-buffer", 64, "Command line buffer capacity in bytes")
	rootCmd.Flags().Int("history-buffer", 128, "History buffer capacity in bytes")
	rootCmd.Flags().Int("max-bindings", 8, "Maximum number of user command bindings")

	for _, name := range []string{"rx-buffer", "cmd-buffer", "history-buffer", "max-bindings"} {
		if err := viper.BindPFlag(name, rootCmd.Flags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runDemo(_ *cobra.Command, _ []string) error {
	cfg := clitypes.DefaultConfig()
	cfg.RxBufferSize = viper.GetInt("rx-buffer")
	cfg.CmdBufferSize = viper.GetInt("cmd-buffer")
	cfg.HistoryBufferSize = viper.GetInt("history-buffer")
	cfg.MaxBindingCount = viper.GetInt("max-bindings")

	c, err := cli.New(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	out := make([]byte, 1)
	c.SetOutput(func(b byte) {
		out[0] = b
		_, _ = os.Stdout.Write(out)
	})

	registerDemoBindings(c)

	logger.NewStyledLogger("Demo").Info("demo started", "required", cli.RequiredSize(cfg))

	banner := fmt.Sprintf("microcli v%s - type 'help' to list commands, Ctrl-C to quit", version)
	if termenv.ColorProfile() != termenv.Ascii {
		banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36")).Render(banner)
	}
	fmt.Print(banner + "\r\n")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	in := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(in)
		if err != nil || n == 0 {
			return nil
		}
		b := in[0]
		if b == 0x03 || b == 0x04 { // ctrl-c / ctrl-d
			fmt.Print("\r\n")
			return nil
		}
		c.ReceiveByte(b)
		c.Process()
	}
}

func registerDemoBindings(c *cli.Cli) {
	c.AddBinding(clitypes.Binding{
		Name:    "echo",
		Help:    "Print the arguments back",
		Handler: onEcho,
	})
	c.AddBinding(clitypes.Binding{
		Name:         "add",
		Help:         "Sum the integer arguments",
		TokenizeArgs: true,
		Handler:      onAdd,
	})
	c.AddBinding(clitypes.Binding{
		Name: "history",
		Help: "List submitted commands, most recent first",
		Handler: func(p clitypes.Printer, _ []byte, _ any) {
			for i := 1; ; i++ {
				entry, ok := c.History(i)
				if !ok {
					return
				}
				p.Print(fmt.Sprintf("%3d  %s", i, entry))
			}
		},
	})
	c.AddBinding(clitypes.Binding{
		Name: "clear",
		Help: "Clear the screen",
		Handler: func(p clitypes.Printer, _ []byte, _ any) {
			p.Print("\x1b[2J\x1b[H")
		},
	})

	c.SetDefaultHandler(func(p clitypes.Printer, cmd clitypes.Command) {
		p.Print(fmt.Sprintf("%s: no such command, try 'help'", cmd.Name))
	})
}

func onEcho(p clitypes.Printer, args []byte, _ any) {
	p.Print(clitypes.Command{Args: args}.ArgsString())
}

func onAdd(p clitypes.Printer, args []byte, _ any) {
	count := tokens.Count(args)
	if count == 0 {
		p.Print("add: nothing to sum")
		return
	}
	sum := 0
	for i := 1; i <= count; i++ {
		tok, _ := tokens.Get(args, i)
		v, err := strconv.Atoi(tok)
		if err != nil {
			p.Print(fmt.Sprintf("add: %q is not an integer", tok))
			return
		}
		sum += v
	}
	p.Print(strconv.Itoa(sum))
}
