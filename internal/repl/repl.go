// Package repl implements the interactive read-parse-dispatch loop.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"taskcli/internal/commands"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
)

// Runner parses and executes one tokenized command line.
// *cli.Dispatcher implements it.
type Runner interface {
	Run(ctx context.Context, args []string, out, errOut io.Writer) int
}

// Session is one interactive loop over an input stream.
type Session struct {
	runner Runner
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	logger *zap.Logger
	clear  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClearScreen enables clearing the terminal before each command's output.
func WithClearScreen(on bool) Option {
	return func(s *Session) { s.clear = on }
}

// New creates a Session reading from in and writing to out and errOut.
func New(runner Runner, in io.Reader, out, errOut io.Writer, opts ...Option) *Session {
	s := &Session{
		runner: runner,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Normalize trims surrounding whitespace and lower-cases the line.
func Normalize(line string) string {
	return strings.ToLower(strings.TrimSpace(line))
}

// Tokenize splits a normalized line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Exec normalizes, tokenizes and runs a single line.
// done is true when the line is the exit word; blank lines do nothing.
func (s *Session) Exec(ctx context.Context, line string) (code int, done bool) {
	norm := Normalize(line)
	if norm == commands.ExitWord {
		return exitcode.Success, true
	}

	args := Tokenize(norm)
	if len(args) == 0 {
		return exitcode.Success, false
	}

	if s.clear {
		output.ClearScreen(s.out)
	}
	code = s.runner.Run(ctx, args, s.out, s.errOut)
	s.logger.Debug("executed line", zap.Strings("args", args), zap.Int("code", code))
	return code, false
}

type readResult struct {
	line string
	err  error
}

// readLines feeds input lines to the loop so that cancellation does not
// wait on a blocked read. Lines are still handled one at a time by Run.
func (s *Session) readLines(ctx context.Context) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		defer close(ch)
		for {
			line, err := s.in.ReadString('\n')
			select {
			case ch <- readResult{line: line, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// Run prompts and executes lines until exit, EOF, or ctx is cancelled.
// Command failures never end the loop. Returns exitcode.IOError only when
// reading input fails.
func (s *Session) Run(ctx context.Context) int {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := s.readLines(ctx)
	if s.clear {
		output.ClearScreen(s.out)
	}

	for {
		output.FormatPrompt(s.out)

		var res readResult
		var ok bool
		select {
		case <-ctx.Done():
			s.logger.Debug("session cancelled", zap.Error(ctx.Err()))
			s.goodbye(true)
			return exitcode.Success
		case res, ok = <-lines:
		}
		if !ok {
			s.goodbye(true)
			return exitcode.Success
		}

		if res.err != nil && !errors.Is(res.err, io.EOF) {
			fmt.Fprintln(s.out)
			fmt.Fprintf(s.errOut, "error: reading input: %v\n", res.err)
			return exitcode.IOError
		}

		if _, done := s.Exec(ctx, res.line); done {
			s.goodbye(false)
			return exitcode.Success
		}

		if res.err != nil {
			s.logger.Debug("end of input")
			s.goodbye(len(Tokenize(res.line)) == 0)
			return exitcode.Success
		}
	}
}

// goodbye prints the closing line. newline is set when the input did not end
// with one, so the message starts on a fresh line.
func (s *Session) goodbye(newline bool) {
	if newline {
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out, output.Goodbye)
}
