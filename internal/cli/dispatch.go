// Package cli maps parsed commands onto the list service and renders outcomes.
package cli

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/output"
	"taskcli/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend when building the dispatcher.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// Dispatcher executes commands against a Service.
// It is the only place where command outcomes and errors are printed.
type Dispatcher struct {
	registry *commands.Registry
	svc      service.Service
	cfg      *config.Config
	logger   *zap.Logger
}

// NewDispatcher creates the service via factory and returns a dispatcher using it.
func NewDispatcher(ctx context.Context, cfg *config.Config, registry *commands.Registry, factory ServiceFactory, logger *zap.Logger) (*Dispatcher, error) {
	svc, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("opening list store: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		registry: registry,
		svc:      svc,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run parses args and dispatches the resulting command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	return d.Dispatch(ctx, d.registry.Parse(args), out, errOut)
}

// Dispatch executes cmd. Returns the exit code.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd commands.Command, out, errOut io.Writer) int {
	d.logger.Debug("dispatching command", zap.String("type", fmt.Sprintf("%T", cmd)))

	switch c := cmd.(type) {
	case commands.ShowLists:
		return d.showLists(ctx, out, errOut)
	case commands.NewList:
		return d.newList(ctx, c, out, errOut)
	case commands.RenameList:
		return d.renameList(ctx, c, out, errOut)
	case commands.DeleteList:
		return d.deleteList(ctx, c, out, errOut)
	case commands.Help:
		fmt.Fprint(out, c.Text)
		return exitcode.Success
	case commands.Undefined:
		fmt.Fprintln(out, c.Message)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: unhandled command: %T\n", cmd)
		return exitcode.UserError
	}
}

func (d *Dispatcher) showLists(ctx context.Context, out, errOut io.Writer) int {
	names, err := d.svc.ListLists(ctx)
	if err != nil {
		return d.fail(errOut, err)
	}
	output.FormatLists(out, names)
	return exitcode.Success
}

func (d *Dispatcher) newList(ctx context.Context, c commands.NewList, out, errOut io.Writer) int {
	if _, err := d.svc.CreateList(ctx, c.Name); err != nil {
		return d.fail(errOut, err)
	}
	if !d.cfg.Quiet {
		output.FormatCreated(out, c.Name)
	}
	return exitcode.Success
}

func (d *Dispatcher) renameList(ctx context.Context, c commands.RenameList, out, errOut io.Writer) int {
	if err := d.svc.RenameList(ctx, c.From, c.To); err != nil {
		return d.fail(errOut, err)
	}
	if !d.cfg.Quiet {
		output.FormatRenamed(out, c.From, c.To)
	}
	return exitcode.Success
}

func (d *Dispatcher) deleteList(ctx context.Context, c commands.DeleteList, out, errOut io.Writer) int {
	if err := d.svc.DeleteList(ctx, c.Name); err != nil {
		return d.fail(errOut, err)
	}
	if !d.cfg.Quiet {
		output.FormatDeleted(out, c.Name)
	}
	return exitcode.Success
}

// fail renders err on errOut and maps its kind to an exit code.
func (d *Dispatcher) fail(errOut io.Writer, err error) int {
	output.FormatError(errOut, err)

	switch service.KindOf(err) {
	case service.KindAlreadyExists, service.KindNotFound:
		return exitcode.UserError
	default:
		d.logger.Warn("list store error", zap.Error(err))
		return exitcode.IOError
	}
}
