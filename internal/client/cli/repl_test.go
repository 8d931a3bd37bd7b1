package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) Add(ctx context.Context) error { return s.record("add") }
func (s *stubExec) List(ctx context.Context) error { return s.record("list") }
func (s *stubExec) SetStatus(ctx context.Context) error { return s.record("status") }
func (s *stubExec) Toggle(ctx context.Context) error { return s.record("toggle") }
func (s *stubExec) Delete(ctx context.Context) error { return s.record("delete") }
func (s *stubExec) Profile(ctx context.Context) error { return s.record("profile") }
func (s *stubExec) Reset(ctx context.Context) error { return s.record("reset") }

// captureOutput redirects printlnFn into a slice for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })
	lines := &[]string{}
	printlnFn = func(a ...any) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
	}
	return lines
}

func runScript(t *testing.T, exec *stubExec, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
}

func TestREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "add\nlist\nstatus\ntoggle\ndelete\nprofile\nlogout\nexit\n")
	require.Equal(t, []string{"add", "list", "status", "toggle", "delete", "profile", "logout"}, exec.calls)
}

func TestREPL_ListShorthand(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{loggedIn: true}

	runScript(t, exec, "l\nquit\n")
	require.Equal(t, []string{"list"}, exec.calls)
}

func TestREPL_BlankAndUnknownLinesIgnored(t *testing.T) {
	lines := captureOutput(t)
	exec := &stubExec{}

	runScript(t, exec, "\n   \nfrobnicate\nexit\n")
	require.Empty(t, exec.calls)

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Unknown command")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &stubExec{}

	runScript(t, exec, "register\n") // no exit command; scanner hits EOF
	require.Equal(t, []string{"register"}, exec.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := captureOutput(t)
	exec := &stubExec{loggedIn: false}
	runScript(t, exec, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "register, login")

	lines = captureOutput(t)
	exec = &stubExec{loggedIn: true}
	runScript(t, exec, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "add, (l)ist")
}
