// Package main is the entry point for the taskcli REPL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskcli/internal/backend/filestore"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/repl"
	"taskcli/internal/service"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// options holds the persistent flag values.
type options struct {
	configDir string
	listsDir  string
	quiet     bool
	debug     bool
	noClear   bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command and returns the process exit code.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	code := exitcode.Success
	root := newRootCmd(in, out, errOut, &code)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	return code
}

func newRootCmd(in io.Reader, out, errOut io.Writer, code *int) *cobra.Command {
	var opts options
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "taskcli [command words...]",
		Short: "Interactive task list manager",
		Long: `taskcli manages task lists stored as one .txt file per list.

Run without arguments to start the interactive prompt, then type commands
such as "taskcli new list groceries" or "taskcli help". Type "exit" to quit.

Passing command words runs a single command and exits:
  taskcli new list groceries
  taskcli show list`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = run(cmd.Context(), opts, logger, args, in, out, errOut)
			return nil
		},
	}

	// "completion" is a command word here, not a cobra subcommand.
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	// Command words may look like anything; flags must come first.
	cmd.Flags().SetInterspersed(false)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config", "", "Override config directory")
	flags.StringVar(&opts.listsDir, "dir", "", "Directory holding the list files")
	flags.BoolVar(&opts.quiet, "quiet", false, "Suppress success messages")
	flags.BoolVar(&opts.debug, "debug", false, "Print debug logs to stderr")
	flags.BoolVar(&opts.noClear, "no-clear", false, "Never clear the terminal")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	return logCfg.Build()
}

// run loads config, opens the list store and runs either one command or the REPL.
func run(ctx context.Context, opts options, logger *zap.Logger, args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	cfg.SetListsDir(opts.listsDir)
	cfg.Debug = opts.debug
	if opts.quiet {
		cfg.Quiet = true
	}
	if opts.noClear {
		cfg.ClearScreen = false
	}
	logger.Debug("configuration loaded",
		zap.String("config", cfg.FilePath()),
		zap.String("lists_dir", cfg.ListsDir))

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return filestore.Open(cfg, filestore.WithLogger(logger))
	}
	dispatcher, err := cli.NewDispatcher(ctx, cfg, commands.DefaultRegistry, factory, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}

	if len(args) > 0 {
		session := repl.New(dispatcher, in, out, errOut, repl.WithLogger(logger))
		code, _ := session.Exec(ctx, commands.Program+" "+strings.Join(args, " "))
		return code
	}

	session := repl.New(dispatcher, in, out, errOut,
		repl.WithLogger(logger),
		repl.WithClearScreen(cfg.ClearScreen && isTerminal(out)))
	return session.Run(ctx)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
