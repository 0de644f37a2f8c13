package testutil

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// Output holds what a command wrote.
type Output struct {
	Stdout string
	Stderr string
}

// RunCommand executes a command under a test root command, feeding stdin and
// capturing both output streams.
func RunCommand(t *testing.T, command *cli.Command, stdin string, args ...string) (Output, error) {
	t.Helper()

	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
	}

	return RunApp(t, app, stdin, append([]string{command.Name}, args...)...)
}

// RunApp executes app with args (without the program name), feeding stdin and
// capturing both output streams.
func RunApp(t *testing.T, app *cli.Command, stdin string, args ...string) (Output, error) {
	t.Helper()
	return RunAppWithContext(context.Background(), t, app, strings.NewReader(stdin), args...)
}

// RunAppWithContext is RunApp with a custom context and input reader.
func RunAppWithContext(ctx context.Context, t *testing.T, app *cli.Command, stdin io.Reader, args ...string) (Output, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app.Reader = stdin
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.Run(ctx, append([]string{app.Name}, args...))
	return Output{Stdout: stdout.String(), Stderr: stderr.String()}, err
}
