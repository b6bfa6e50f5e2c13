package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taskapp/internal/cli"
	"taskapp/internal/commands"
	"taskapp/internal/config"
	"taskapp/internal/exitcode"
	"taskapp/internal/service"
	"taskapp/internal/testutil"
)

// testFactory creates a service factory that returns the given FakeService.
func testFactory(svc *testutil.FakeService) cli.ServiceFactory {
	return func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

func run(t *testing.T, factory cli.ServiceFactory, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LOG_LEVEL", "")

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var outBuf, errBuf bytes.Buffer
	code = dispatcher.Run(context.Background(), args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	_, stderr, code := run(t, testFactory(testutil.NewFakeService()), "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !bytes.Contains([]byte(stdout), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, stderr, code := run(t, nil, "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskapp 0.1.0\n" {
		t.Errorf("expected 'taskapp 0.1.0\\n', got %q", stdout)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, nil, "help", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagNeedsArgument(t *testing.T) {
	_, stderr, code := run(t, nil, "lists", "--config")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_InvalidBoolFlag(t *testing.T) {
	_, _, code := run(t, nil, "import", "--wait=maybe")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
}

func TestDispatcher_ListsWithService(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddList("work", "Work")

	stdout, stderr, code := run(t, testFactory(svc), "lists")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "My Tasks [default]\nWork\n" {
		t.Errorf("unexpected stdout %q", stdout)
	}
}

func TestDispatcher_NoCredentials(t *testing.T) {
	dir := t.TempDir()

	_, stderr, code := run(t, nil, "lists", "--config", dir)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	expected := "error: oauth_client.json not found in " + dir + "\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_NotLoggedIn(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte("{}"), 0600); err != nil {
		t.Fatalf("failed to write oauth client: %v", err)
	}

	_, stderr, code := run(t, nil, "import", "--config", dir)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != "error: not logged in (run: taskapp login)\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FactoryAuthError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("failed to read token.json: no such file")
	}

	_, stderr, code := run(t, factory, "lists")

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if stderr != "error: auth error: failed to read token.json: no such file\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_FactoryBackendError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return nil, errors.New("failed to create tasks service: dial failed")
	}

	_, _, code := run(t, factory, "lists")

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
}

func TestDispatcher_InvalidEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.EnvFile), []byte("BROKEN='unterminated\n"), 0600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}

	_, stderr, code := run(t, nil, "version", "--config", dir)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !bytes.HasPrefix([]byte(stderr), []byte("error: invalid taskapp.env")) {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestDispatcher_DefaultsToRun(t *testing.T) {
	// Without arguments the run command reads stdin; an unexpected positional
	// argument proves the dispatch without touching stdin.
	_, stderr, code := run(t, nil, "run", "extra")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if cli.DefaultCommand != "run" {
		t.Errorf("expected default command run, got %q", cli.DefaultCommand)
	}
}
