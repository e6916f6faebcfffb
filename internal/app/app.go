package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/coincalc/internal/cli"
	"github.com/agbru/coincalc/internal/coinchange"
	"github.com/agbru/coincalc/internal/config"
	apperrors "github.com/agbru/coincalc/internal/errors"
	"github.com/agbru/coincalc/internal/logging"
	"github.com/agbru/coincalc/internal/ui"
)

// Application represents the coincalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   coinchange.CounterFactory
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CounterFactory for the application.
func WithFactory(f coinchange.CounterFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger used for run traces.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = coinchange.NewDefaultFactory()
	}

	programName := "coincalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewDefaultLogger()
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Config.DemoMode() {
		return a.runDemo(ctx, out)
	}
	return a.runCompare(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (-help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError maps an error returned by New to a process exit code.
// Every parse or validation failure is a configuration error.
func ExitCodeForError(err error) int {
	if err == nil || IsHelpError(err) {
		return apperrors.ExitSuccess
	}
	return apperrors.ExitErrorConfig
}
