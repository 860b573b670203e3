package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/service"
	"taskcli/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

func newDispatcher(t *testing.T, svc *testutil.FakeService, quiet bool) *cli.Dispatcher {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir(), Quiet: quiet}
	d, err := cli.NewDispatcher(context.Background(), cfg, commands.DefaultRegistry, testFactory(svc), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return d
}

func run(t *testing.T, d *cli.Dispatcher, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	code = d.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestNewDispatcher_FactoryError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("boom")
	}
	_, err := cli.NewDispatcher(context.Background(), &config.Config{}, commands.DefaultRegistry, factory, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "opening list store: boom" {
		t.Errorf("unexpected error %q", err)
	}
}

func TestDispatcher_UndefinedCommand(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), false)

	stdout, stderr, code := run(t, d, "foo", "bar")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != commands.InvalidCommandMessage+"\n" {
		t.Errorf("expected undefined diagnostic, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
}

func TestDispatcher_Help(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), false)

	stdout, stderr, code := run(t, d, "taskcli", "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("Available commands:")) {
		t.Error("expected help output to contain 'Available commands:'")
	}
}

func TestDispatcher_NewList(t *testing.T) {
	svc := testutil.NewFakeService()
	d := newDispatcher(t, svc, false)

	stdout, stderr, code := run(t, d, "taskcli", "new", "list", "groceries")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Successfully created the list: groceries\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if names := svc.Names(); len(names) != 1 || names[0] != "groceries" {
		t.Errorf("expected [groceries], got %v", names)
	}
}

func TestDispatcher_NewList_AlreadyExists(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("groceries")
	d := newDispatcher(t, svc, false)

	stdout, stderr, code := run(t, d, "taskcli", "new", "list", "groceries")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: list already exists: groceries\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_NewList_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()
	d := newDispatcher(t, svc, true)

	stdout, _, code := run(t, d, "taskcli", "new", "list", "groceries")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
}

func TestDispatcher_RenameList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("groceries")
	d := newDispatcher(t, svc, false)

	stdout, stderr, code := run(t, d, "taskcli", "rename", "list", "groceries", "errands")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Successfully renamed the list: groceries -> errands\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_RenameList_NotFound(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), false)

	_, stderr, code := run(t, d, "taskcli", "rename", "list", "groceries", "errands")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list not found: groceries\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DeleteList(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("errands")
	d := newDispatcher(t, svc, false)

	stdout, _, code := run(t, d, "taskcli", "delete", "list", "errands")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Successfully deleted the list: errands\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
	if len(svc.Names()) != 0 {
		t.Errorf("expected no lists, got %v", svc.Names())
	}
}

func TestDispatcher_DeleteList_NotFound(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), false)

	_, stderr, code := run(t, d, "taskcli", "delete", "list", "errands")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: list not found: errands\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_ShowLists(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("work")
	svc.AddList("errands")
	d := newDispatcher(t, svc, false)

	stdout, stderr, code := run(t, d, "taskcli", "show", "list")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "errands\nwork\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_ShowLists_Empty(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), true)

	stdout, _, code := run(t, d, "taskcli", "show", "list")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "No lists found.\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_IOErrors(t *testing.T) {
	ioErr := service.IOError("enumerate", "", os.ErrPermission)

	tests := []struct {
		name   string
		inject func(*testutil.FakeService)
		args   []string
	}{
		{"show", func(s *testutil.FakeService) { s.ListListsErr = ioErr }, []string{"taskcli", "show", "list"}},
		{"new", func(s *testutil.FakeService) { s.CreateListErr = ioErr }, []string{"taskcli", "new", "list", "a"}},
		{"rename", func(s *testutil.FakeService) { s.RenameListErr = ioErr }, []string{"taskcli", "rename", "list", "a", "b"}},
		{"delete", func(s *testutil.FakeService) { s.DeleteListErr = ioErr }, []string{"taskcli", "delete", "list", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			tt.inject(svc)
			d := newDispatcher(t, svc, false)

			stdout, stderr, code := run(t, d, tt.args...)

			if code != exitcode.IOError {
				t.Errorf("expected exit code %d, got %d", exitcode.IOError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != "error: enumerate lists: permission denied\n" {
				t.Errorf("unexpected stderr %q", stderr)
			}
		})
	}
}

type unknownCommand struct{ commands.Command }

func TestDispatcher_UnhandledVariant(t *testing.T) {
	d := newDispatcher(t, testutil.NewFakeService(), false)

	var stdout, stderr bytes.Buffer
	code := d.Dispatch(context.Background(), unknownCommand{}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr.String() != "error: unhandled command: cli_test.unknownCommand\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}
