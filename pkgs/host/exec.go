package host

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

// ExecInterpreter hands compiled programs to an external interpreter process.
// The program is appended as the command's final argument, so a command
// string of "nuke -t -c" runs `nuke -t -c <program>`.
type ExecInterpreter struct {
	args   []string
	stdout io.Writer
	stderr io.Writer
}

// NewExecInterpreter builds an ExecInterpreter from a shell-quoted command
// string.
func NewExecInterpreter(command string) (*ExecInterpreter, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.NewHostExecError(command, err)
	}
	if len(args) == 0 {
		return nil, errors.New(errors.ErrHostExec, "empty interpreter command")
	}
	return &ExecInterpreter{args: args, stdout: os.Stdout, stderr: os.Stderr}, nil
}

// SetOutput redirects the interpreter's stdout and stderr streams.
func (e *ExecInterpreter) SetOutput(stdout, stderr io.Writer) {
	e.stdout = stdout
	e.stderr = stderr
}

// Command returns the argv that Run would execute for a given program.
func (e *ExecInterpreter) Command(program string) []string {
	argv := make([]string, 0, len(e.args)+1)
	argv = append(argv, e.args...)
	return append(argv, program)
}

// Run executes the interpreter with the compiled program, streaming its
// output through.
func (e *ExecInterpreter) Run(ctx context.Context, program string) error {
	argv := e.Command(program)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err := cmd.Run(); err != nil {
		return errors.NewHostExecError(strings.Join(e.args, " "), err)
	}
	return nil
}

// ExecPluginSource runs a command expected to print one node-class name per
// line, the mechanism for obtaining the host's plugin list without linking
// against it.
type ExecPluginSource struct {
	args []string
}

// NewExecPluginSource builds an ExecPluginSource from a shell-quoted command
// string.
func NewExecPluginSource(command string) (*ExecPluginSource, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, errors.NewHostExecError(command, err)
	}
	if len(args) == 0 {
		return nil, errors.New(errors.ErrHostExec, "empty plugin-list command")
	}
	return &ExecPluginSource{args: args}, nil
}

// ListPlugins runs the configured command and returns its non-empty output
// lines as class names.
func (s *ExecPluginSource) ListPlugins(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, s.args[0], s.args[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.NewHostExecError(strings.Join(s.args, " "), err)
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names, nil
}
