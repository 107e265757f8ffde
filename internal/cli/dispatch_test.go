package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/backend/jsonfile"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/store"
	"todo/internal/task"
	"todo/internal/testutil"
)

// testFactory creates a backend factory that returns the given FakeBackend.
func testFactory(fb *testutil.FakeBackend) cli.BackendFactory {
	return func(cfg *config.Config) (store.Backend, error) {
		return fb, nil
	}
}

// fileFactory creates real JSON file backends from the resolved config.
func fileFactory() cli.BackendFactory {
	return func(cfg *config.Config) (store.Backend, error) {
		return jsonfile.New(cfg.File), nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--file"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -file\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsRunsList(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	expected := "--- Your To-Do List ---\n[ ] 1: Buy milk\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}

	// A read-only command must not write the store
	if len(fb.Saved) != 0 {
		t.Errorf("expected no save after list, got %d saves", len(fb.Saved))
	}
}

func TestDispatcher_AddSavesStore(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}

	if len(fb.Saved) != 1 {
		t.Fatalf("expected 1 save, got %d", len(fb.Saved))
	}
	saved := fb.LastSaved()
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved task, got %d", len(saved))
	}
	want := task.Task{ID: 1, Description: "Buy milk", Completed: false}
	if saved[0] != want {
		t.Errorf("saved task = %+v, want %+v", saved[0], want)
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout.String())
	}
	// Quiet suppresses output, not persistence
	if len(fb.Saved) != 1 {
		t.Errorf("expected 1 save, got %d", len(fb.Saved))
	}
}

func TestDispatcher_DebugLogging(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--debug"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stderr.String(), `msg="dispatching command"`) {
		t.Errorf("expected dispatch debug line, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "command=list") {
		t.Errorf("expected command name in debug line, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), `msg="store loaded"`) {
		t.Errorf("expected load debug line, got %q", stderr.String())
	}
}

func TestDispatcher_WithoutDebugKeepsStderrClean(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr without --debug, got %q", stderr.String())
	}
}

func TestDispatcher_DoneAlias(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"done", "1"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "🎉 Completed to-do 1: \"Buy milk\"\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}

	saved := fb.LastSaved()
	if len(saved) != 1 || !saved[0].Completed {
		t.Errorf("expected completed task saved, got %+v", saved)
	}
}

func TestDispatcher_RmAlias(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"rm", "1"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "🗑️ Deleted to-do with ID 1.\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}

	if len(fb.Saved) != 1 {
		t.Fatalf("expected 1 save, got %d", len(fb.Saved))
	}
	if len(fb.LastSaved()) != 0 {
		t.Errorf("expected empty store saved, got %+v", fb.LastSaved())
	}
}

func TestDispatcher_FailedCommandDoesNotSave(t *testing.T) {
	fb := &testutil.FakeBackend{
		Tasks: []task.Task{{ID: 1, Description: "Buy milk"}},
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"delete", "99"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: to-do not found: 99\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
	if len(fb.Saved) != 0 {
		t.Errorf("expected no save after failed command, got %d saves", len(fb.Saved))
	}
}

func TestDispatcher_SaveFailure(t *testing.T) {
	fb := &testutil.FakeBackend{
		SaveErr: errors.New("disk full"),
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	if !strings.Contains(stderr.String(), "disk full") {
		t.Errorf("expected save error on stderr, got %q", stderr.String())
	}
}

func TestDispatcher_LoadFailure(t *testing.T) {
	fb := &testutil.FakeBackend{
		LoadErr: errors.New("permission denied"),
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: permission denied\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_CorruptStore(t *testing.T) {
	fb := &testutil.FakeBackend{
		LoadErr: fmt.Errorf("%w: todos.json: unexpected end of JSON input", store.ErrCorrupt),
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.CorruptError {
		t.Errorf("expected exit code %d, got %d", exitcode.CorruptError, code)
	}
	if !strings.Contains(stderr.String(), "corrupt store file") {
		t.Errorf("expected corrupt store error, got %q", stderr.String())
	}
}

func TestDispatcher_UnknownBackend(t *testing.T) {
	fb := &testutil.FakeBackend{}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(fb))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--backend", "bogus"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown backend: bogus\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, fileFactory())

	run := func(args ...string) (string, string, int) {
		t.Helper()
		var stdout, stderr bytes.Buffer
		full := append([]string{args[0], "--file", path}, args[1:]...)
		code := dispatcher.Run(context.Background(), full, &stdout, &stderr)
		return stdout.String(), stderr.String(), code
	}

	steps := [][]string{
		{"add", "Learn basics"},
		{"add", "Build app"},
		{"complete", "1"},
		{"edit", "2", "Build awesome app"},
		{"delete", "1"},
	}
	for _, step := range steps {
		if _, stderr, code := run(step...); code != exitcode.Success {
			t.Fatalf("%v: exit code %d, stderr %q", step, code, stderr)
		}
	}

	stdout, stderr, code := run("list")
	if code != exitcode.Success {
		t.Fatalf("list: exit code %d, stderr %q", code, stderr)
	}
	expected := "--- Your To-Do List ---\n[ ] 2: Build awesome app\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	if !strings.Contains(string(data), "Build awesome app") {
		t.Errorf("store file missing task, got %s", data)
	}
}

func TestDispatcher_CorruptFileNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")
	if err := os.WriteFile(path, []byte("{garbage"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, fileFactory())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--file", path, "x"}, &stdout, &stderr)

	if code != exitcode.CorruptError {
		t.Errorf("expected exit code %d, got %d", exitcode.CorruptError, code)
	}
	if !strings.Contains(stderr.String(), path) {
		t.Errorf("expected path in error, got %q", stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store file: %v", err)
	}
	if string(data) != "{garbage" {
		t.Errorf("corrupt file was modified: %q", data)
	}
}
