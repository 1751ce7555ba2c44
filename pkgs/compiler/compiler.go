package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/lumapictures/nukecli/pkgs/catalog"
	"github.com/lumapictures/nukecli/pkgs/errors"
	"github.com/lumapictures/nukecli/pkgs/lexer"
)

// Opt represents a compiler configuration option
type Opt func(*Compiler)

// WithWarnings redirects save-guard advisories. The default is os.Stderr.
func WithWarnings(w io.Writer) Opt {
	return func(c *Compiler) {
		c.warnings = w
	}
}

// WithLogger enables debug tracing of command dispatch
func WithLogger(logger *slog.Logger) Opt {
	return func(c *Compiler) {
		c.logger = logger
	}
}

// WithIDGenerator replaces the node-identifier source. Tests pin it for
// deterministic output.
func WithIDGenerator(gen func() string) Opt {
	return func(c *Compiler) {
		c.newID = gen
	}
}

// Compiler walks tokenized commands and emits a TCL statement program for the
// host interpreter. It never models the host's node stack itself; its job is
// statement sequencing only.
type Compiler struct {
	catalog  *catalog.Catalog
	warnings io.Writer
	logger   *slog.Logger
	newID    func() string
}

// New creates a Compiler bound to an immutable class catalog.
func New(cat *catalog.Catalog, opts ...Opt) *Compiler {
	c := &Compiler{
		catalog:  cat,
		warnings: os.Stderr,
		logger:   slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		newID:    newNodeID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// execRequest pins a captured node identifier for a deferred execute
// statement. An empty frameRange means the node's own first/last knob values
// determine the range.
type execRequest struct {
	id         string
	frameRange string
}

// compilation is the per-call state: one statement list, one variable table,
// one deferred-execution list. The "0" entry is pre-seeded so push 0 is
// always legal.
type compilation struct {
	statements []string
	vars       map[string]string
	execs      []execRequest
}

// Compile translates a raw argument string into a single TCL program string.
// Resolution, lookup, and arity errors abort immediately; no partial program
// is returned. Save-guard advisories go to the warnings writer and never
// abort.
func (c *Compiler) Compile(raw string) (string, error) {
	run := &compilation{
		vars: map[string]string{"0": "0"},
	}

	for _, cmd := range lexer.Split(raw) {
		c.logger.Debug("dispatch", "command", cmd.Name, "args", len(cmd.Args))
		if err := c.dispatch(run, cmd); err != nil {
			return "", err
		}
	}

	// Deferred executions run after the entire script is built, in the order
	// the execute commands were encountered.
	for _, ex := range run.execs {
		if ex.frameRange != "" {
			run.append(fmt.Sprintf("execute $%s %s", ex.id, ex.frameRange))
		} else {
			run.append(fmt.Sprintf("execute $%s [value $%s.first]-[value $%s.last]",
				ex.id, ex.id, ex.id))
		}
	}

	return strings.Join(run.statements, ";") + ";", nil
}

func (r *compilation) append(stmt string) {
	r.statements = append(r.statements, stmt)
}

func (c *Compiler) dispatch(run *compilation, cmd lexer.Command) error {
	switch cmd.Name {
	case "set":
		return c.compileSet(run, cmd)
	case "push":
		return c.compilePush(run, cmd)
	case "execute":
		return c.compileExecute(run, cmd)
	case "save":
		return c.compileSave(run, cmd)
	default:
		return c.compileNode(run, cmd)
	}
}

// compileSet captures the current stack top under a fresh identifier and
// records the user's name for it. Names are never updated or removed.
func (c *Compiler) compileSet(run *compilation, cmd lexer.Command) error {
	if len(cmd.Args) != 1 {
		return errors.NewMalformedCommandError("set", len(cmd.Args), "exactly one")
	}
	id := c.newID()
	run.vars[cmd.Args[0]] = id
	run.append(fmt.Sprintf("set %s [stack 0]", id))
	return nil
}

// compilePush recalls a stored node to the stack top. The reserved name "0"
// pushes the null placeholder that leaves an input deliberately unconnected.
func (c *Compiler) compilePush(run *compilation, cmd lexer.Command) error {
	if len(cmd.Args) != 1 {
		return errors.NewMalformedCommandError("push", len(cmd.Args), "exactly one")
	}
	name := cmd.Args[0]
	if name == "0" {
		run.append("push 0")
		return nil
	}
	id, ok := run.vars[name]
	if !ok {
		return errors.NewUndefinedVariableError(name)
	}
	run.append(fmt.Sprintf("push $%s", id))
	return nil
}

// compileExecute captures the stack top immediately so the right node stays
// pinned, then registers the execute statement for deferred emission.
func (c *Compiler) compileExecute(run *compilation, cmd lexer.Command) error {
	if len(cmd.Args) > 1 {
		return errors.NewMalformedCommandError("execute", len(cmd.Args), "zero or one")
	}
	id := c.newID()
	frameRange := ""
	if len(cmd.Args) == 1 {
		frameRange = cmd.Args[0]
	}
	run.execs = append(run.execs, execRequest{id: id, frameRange: frameRange})
	run.append(fmt.Sprintf("set %s [stack 0]", id))
	return nil
}

// compileSave emits a script_save statement at this exact point in the
// sequence, subject to the overwrite guard. All skip conditions are
// advisories, never errors.
func (c *Compiler) compileSave(run *compilation, cmd lexer.Command) error {
	if len(cmd.Args) == 0 || len(cmd.Args) > 2 {
		return errors.NewMalformedCommandError("save", len(cmd.Args), "one or two")
	}
	path := cmd.Args[0]

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(c.warnings, "WARNING: Script save path '%s' is a directory. Ignoring.\n", path)
			return nil
		}
		fmt.Fprintf(c.warnings, "WARNING: Script save path already exists: '%s'\n", path)
		if len(cmd.Args) == 1 {
			fmt.Fprintf(c.warnings, "WARNING: No force command found. Skipping script save.\n")
			return nil
		}
		if cmd.Args[1] != "force" {
			fmt.Fprintf(c.warnings, "WARNING: Invalid 'save' syntax. Use '-save <path> force' to force-overwrite a save target. Skipping script save.\n")
			return nil
		}
		fmt.Fprintf(c.warnings, "Forcing script save.\n")
	}

	run.append(fmt.Sprintf("script_save {%s}", path))
	return nil
}

// compileNode resolves the command name as a node class and emits a creation
// statement. The host fills the new node's inputs from its own stack; the
// compiler does not track connectivity.
func (c *Compiler) compileNode(run *compilation, cmd lexer.Command) error {
	class, err := c.catalog.Resolve(cmd.Name)
	if err != nil {
		return err
	}
	run.append(fmt.Sprintf("%s {%s}", class, cmd.ArgString()))
	return nil
}
