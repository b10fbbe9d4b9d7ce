package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/clog/cli/cmd"
	"github.com/ardnew/clog/color"
	"github.com/ardnew/clog/config"
	"github.com/ardnew/clog/log"
	"github.com/ardnew/clog/pkg"
)

// CLI is the top-level command-line interface for clog.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config string `default:"${config}" help:"Configuration file"              short:"c" type:"path"`
	Color  string `default:"auto"      enum:"${colorModeEnum}"                help:"When to color lines (${enum})"`

	Display cmd.DisplayLine `cmd:"" help:"Print a line at display verbosity"`
	Verbose cmd.VerboseLine `cmd:"" help:"Print a line at verbose verbosity"`
	Warn    cmd.WarnLine    `cmd:"" help:"Print a line at warning verbosity"`
	Error   cmd.ErrorLine   `cmd:"" help:"Print a line at error verbosity"`

	Header    cmd.Header    `cmd:"" help:"Print a header line"`
	Divider   cmd.Divider   `cmd:"" help:"Print a divider line"`
	Linebreak cmd.Linebreak `cmd:"" help:"Print an empty line"`

	Render cmd.Render `cmd:"" help:"Render a format template once"`

	Check   cmd.Check   `cmd:"" help:"Validate the configuration file"`
	Init    cmd.Init    `cmd:"" help:"Initialize configuration file"`
	Version cmd.Version `cmd:"" help:"Print the version"`
}

// Run executes the clog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure the logger before kong parses, so that flag position does not
	// matter and parse errors are reported in the requested format.
	cli.Log.scan(args)

	configFilePath := scanConfig(args, config.DefaultPath())

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		"colorModeEnum":      joinEnum(color.Modes()),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			append(cli.Log.groups(), cli.Pprof.groups()...),
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolver(configFilePath), configFilePath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithEnv(ctx, cmd.Env{
		Out:     os.Stdout,
		Palette: color.MakePalette(os.Stdout, color.WithMode(color.ParseMode(cli.Color))),
		Config:  cli.Config,
	})

	log.DebugContext(ctx, "run command",
		slog.String("command", ktx.Command()),
		slog.String("config", cli.Config),
		slog.String("color", cli.Color),
	)

	return ktx.Run()
}
