package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/containerd/errdefs"

	"github.com/musicalloto/lotopack/internal"
	"github.com/musicalloto/lotopack/internal/logging"
	"github.com/musicalloto/lotopack/internal/project"
	"github.com/musicalloto/lotopack/internal/target"
)

// Represents the root command for the lotopack driver.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Project string     `short:"p" help:"Project root. Defaults to the parent of the driver's directory." placeholder:"DIR" type:"existingdir" env:"LOTOPACK_PROJECT"`
	Target  string     `short:"t" help:"Target platform as os[/arch]. Defaults to the host." placeholder:"OS[/ARCH]" env:"LOTOPACK_TARGET"`
	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build the application."`
	Clean   CleanCmd   `cmd:"" help:"Remove previous build output."`
	Env     EnvCmd     `cmd:"" help:"Create or check the build environment."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Packages the MusicalLoto desktop application.\n\nProvisions an isolated Python environment and runs PyInstaller to produce a single executable for the host."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Replaces the global logger with one reflecting the CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	slog.SetDefault(logging.New(os.Stderr, logging.Options{
		Level:   logging.Level(quiet, debug),
		Verbose: verbose,
	}))
}

// Determines the project root, target platform and configuration from the
// global flags.
//
// Building for an operating system other than the host's is refused, since
// the bundler cannot cross-compile.
func loadProject() (string, target.Platform, project.Config, error) {
	p, err := target.Parse(RootCmd.Target)
	if err != nil {
		return "", target.Platform{}, project.Config{}, err
	}
	if !p.IsHost() {
		return "", target.Platform{}, project.Config{}, fmt.Errorf("%w: cannot build for %s on %s", errdefs.ErrNotImplemented, p, target.Host())
	}

	root := RootCmd.Project
	if root == "" {
		if root, err = project.CurrentDriverRoot(); err != nil {
			return "", target.Platform{}, project.Config{}, err
		}
	}

	cfg, err := project.Load(root, p)
	if err != nil {
		return "", target.Platform{}, project.Config{}, err
	}

	slog.Debug("project", "root", root, "platform", p.String())
	return root, p, cfg, nil
}
