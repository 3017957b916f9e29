package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/paramset"
	"github.com/randalmurphal/paramset/config"
	pctx "github.com/randalmurphal/paramset/context"
	perrors "github.com/randalmurphal/paramset/errors"
)

// minPositional is the number of positional arguments the demo requires.
const minPositional = 2

// main is the entrypoint for paramset-demo.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(perrors.ExitCode(err))
	}
}

// run builds the command and executes it against args.
func run(outW, errW io.Writer, args []string) error {
	cmd := newRootCommand(outW, errW)
	cmd.SetArgs(args)
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	return cmd.Execute()
}

func newRootCommand(outW, errW io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "paramset-demo [options] ARG ARG [ARG...]",
		Short: "Show how parameters resolve from defaults, a config file and the command line",
		Long: `paramset-demo resolves its parameters from built-in defaults, an optional
config file (--config, JSON, YAML or HCL by extension) and command-line
options, then prints them.

Examples:
  paramset-demo -s Hi -i 5 extra1 extra2
  paramset-demo --config app.yaml --doublearg 1.5 a b
  paramset-demo --dump-config resolved.yaml a b`,
		DisableFlagParsing: true, // Options are resolved by paramset, not cobra
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), outW, errW, args)
		},
	}
}

// definitions mirrors the classic example program, plus logging and a
// config dump.
func definitions() paramset.Definitions {
	return paramset.Definitions{
		paramset.Param("txt", paramset.Text("Hello, paramset!"), []string{"text"}, "strarg", 's', "string argument"),
		paramset.Param("cnt", paramset.Int(1), []string{"count"}, "intarg", 'i', "integer argument"),
		paramset.Param("rad", paramset.Float(2.3), []string{"radius"}, "doublearg", paramset.NoShort, "double argument"),
		paramset.File("flg", paramset.Bool(true), "path", "to", "flag"),
		paramset.Option("conf", paramset.Text(""), "config", 'c', "config file path"),
		paramset.Const("PI", paramset.Float(3.14)),
		paramset.Param("log-level", paramset.Text("info"), []string{"log", "level"}, "log-level", paramset.NoShort,
			"log level: debug, info, warn or error"),
		paramset.Param("log-format", paramset.Text("text"), []string{"log", "format"}, "log-format", paramset.NoShort,
			"log format: text or json"),
		paramset.Option("dump-config", paramset.Text(""), "dump-config", paramset.NoShort,
			"write the resolved file settings to this path"),
	}
}

func runDemo(ctx context.Context, outW, errW io.Writer, args []string) error {
	pm, err := paramset.New(definitions(), paramset.WithProgramName("paramset-demo"))
	if err != nil {
		return perrors.Wrap(err, "")
	}

	if wantsHelp(args) {
		fmt.Fprint(outW, pm.Usage())
		return nil
	}

	if err := pm.Load(args, "conf", minPositional); err != nil {
		return perrors.Wrap(err, pm.Usage())
	}

	logger, err := loggerFor(pm, errW)
	if err != nil {
		return perrors.Wrap(err, pm.Usage())
	}
	for _, d := range pm.Definitions() {
		v, _ := pm.Get(d.Name)
		src, _ := pm.Source(d.Name)
		logger.Debug("parameter resolved",
			slog.String("name", d.Name),
			slog.String("value", v.String()),
			slog.String("source", string(src)))
	}

	if path, _ := pm.Text("dump-config"); path != "" {
		if err := config.Save(path, pm.ConfigTree()); err != nil {
			return fmt.Errorf("dump config: %w", err)
		}
		logger.Info("config written", slog.String("path", path))
	}

	services := &pctx.Services{Params: pm, Logger: logger}
	return report(services.InjectAll(ctx), outW)
}

// report prints the resolved parameters the way the classic example does.
func report(ctx context.Context, outW io.Writer) error {
	params := pctx.MustParams(ctx)

	txt, err := paramset.Get[string](params, "txt")
	if err != nil {
		return err
	}
	cnt, err := paramset.Get[int](params, "cnt")
	if err != nil {
		return err
	}
	flg, err := paramset.Get[bool](params, "flg")
	if err != nil {
		return err
	}
	rad, err := paramset.Get[float64](params, "rad")
	if err != nil {
		return err
	}
	pi, err := paramset.Get[float64](params, "PI")
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "text: %s\n", txt)
	fmt.Fprintf(outW, "count: %d\n", cnt)
	fmt.Fprintf(outW, "flag: %t\n", flg)
	fmt.Fprintf(outW, "circumference: %.6g\n", 2*rad*pi)
	for _, p := range params.Rest() {
		fmt.Fprintf(outW, "rest: %s\n", p)
	}

	pctx.GetLogger(ctx).Debug("report printed", slog.Int("rest", len(params.Rest())))
	return nil
}

// wantsHelp reports whether args ask for usage. Options are not parsed yet,
// so only a leading help token counts.
func wantsHelp(args []string) bool {
	return len(args) > 0 && (args[0] == "-h" || args[0] == "--help")
}

// loggerFor builds the program logger from the log-level and log-format
// parameters. A bad setting given on the command line is a usage error.
func loggerFor(pm *paramset.Manager, outW io.Writer) (*slog.Logger, error) {
	levelStr, _ := pm.Text("log-level")
	formatStr, _ := pm.Text("log-format")

	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, settingError(pm, "log-level", fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", levelStr))
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(formatStr) {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(outW, handlerOpts)
	default:
		return nil, settingError(pm, "log-format", fmt.Errorf("invalid log-format %q: must be text or json", formatStr))
	}

	return slog.New(handler), nil
}

// settingError attributes an invalid setting to the command line when it
// came from there.
func settingError(pm *paramset.Manager, name string, err error) error {
	if src, _ := pm.Source(name); src == paramset.SourceFlag {
		d, _ := pm.Lookup(name)
		return &paramset.CLIArgumentError{Option: d.LongFlag(), Name: name, Err: err}
	}
	return err
}
