package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumapictures/nukecli/pkgs/catalog"
	"github.com/lumapictures/nukecli/pkgs/compiler"
	"github.com/lumapictures/nukecli/pkgs/host"
)

// Exit code constants
const (
	ExitSuccess     = 0
	ExitUsage       = 1
	ExitCatalogLoad = 2
	ExitCompile     = 3
	ExitHost        = 4
)

func main() {
	var (
		catalogFile string
		pluginsCmd  string
		interpreter string
		dryRun      bool
		debug       bool
		noColor     bool
	)

	rootCmd := &cobra.Command{
		Use:   "nukecli [flags] -- -<class> [knob value]... [-set|-push|-execute|-save ...]",
		Short: "Compile command-line arguments into a TCL script for the host",
		Long: `nukecli compiles a compact argument string into a TCL program that builds,
saves, and executes a node script in the host application. Everything after
-- is the command string; see the pkgs/compiler documentation for the full
grammar.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			run(args, catalogFile, pluginsCmd, interpreter, dryRun, debug, noColor)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&catalogFile, "catalog", "f", "", "Path to a YAML catalog of node classes")
	rootCmd.PersistentFlags().StringVar(&pluginsCmd, "plugins-cmd", "", "Command printing one node class per line, used instead of --catalog")
	rootCmd.PersistentFlags().StringVar(&interpreter, "interpreter", "", "Host interpreter command; the compiled program is appended as its final argument")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Print the compiled program without invoking the host")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUsage)
	}
}

// run performs the full pipeline: catalog, compile, print, hand off. Failures
// print a diagnostic and exit with a stage-specific code; the host is never
// invoked after a compile failure.
func run(args []string, catalogFile, pluginsCmd, interpreter string, dryRun, debug, noColor bool) {
	useColor := ShouldUseColor(noColor)
	fail := func(code int, err error) {
		fmt.Fprintf(os.Stderr, "%s %v\n", Colorize("Error:", ColorRed, useColor), err)
		os.Exit(code)
	}

	if len(args) == 0 {
		fail(ExitUsage, fmt.Errorf("no command string given; pass it after --"))
	}

	cat, err := buildCatalog(catalogFile, pluginsCmd)
	if err != nil {
		fail(ExitCatalogLoad, err)
	}

	opts := []compiler.Opt{}
	if debug {
		opts = append(opts, compiler.WithLogger(newDebugLogger()))
	}

	raw := strings.Join(args, " ")
	program, err := compiler.New(cat, opts...).Compile(raw)
	if err != nil {
		fail(ExitCompile, err)
	}

	printProgram(program, useColor)

	if dryRun || interpreter == "" {
		os.Exit(ExitSuccess)
	}

	interp, err := host.NewExecInterpreter(interpreter)
	if err != nil {
		fail(ExitHost, err)
	}
	if err := interp.Run(context.Background(), program); err != nil {
		fail(ExitHost, err)
	}
	os.Exit(ExitSuccess)
}

// buildCatalog prefers an explicit catalog file; otherwise it asks the host
// for its plugin list and applies the default reader/writer exclusions.
func buildCatalog(catalogFile, pluginsCmd string) (*catalog.Catalog, error) {
	switch {
	case catalogFile != "":
		return catalog.Load(catalogFile)
	case pluginsCmd != "":
		source, err := host.NewExecPluginSource(pluginsCmd)
		if err != nil {
			return nil, err
		}
		names, err := source.ListPlugins(context.Background())
		if err != nil {
			return nil, err
		}
		return catalog.New(names, catalog.DefaultExclusions)
	default:
		return nil, fmt.Errorf("no catalog source; use --catalog or --plugins-cmd")
	}
}

// printProgram frames the compiled program the way the tool always has, so
// it can be eyeballed before the host runs it.
func printProgram(program string, useColor bool) {
	banner := strings.Repeat("=", 15)
	fmt.Printf("\n%s\n", Colorize(fmt.Sprintf("%s TCL COMMAND STRING %s", banner, banner), ColorCyan, useColor))
	fmt.Println(program)
	fmt.Printf("%s\n\n", Colorize(strings.Repeat("=", 50), ColorCyan, useColor))
}

// newDebugLogger mirrors the compiler's tracing setup: text handler on
// stderr, debug level, timestamps dropped to keep the trace diffable.
func newDebugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
