// Package cli wires configuration, logging, variants and audio into the
// morse subcommands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/internal/config"
	"github.com/gucio32/morsekit/internal/log"
	"github.com/gucio32/morsekit/pkg/converter"
	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/history"
	"github.com/gucio32/morsekit/pkg/registry"
	"golang.org/x/term"
)

var (
	isTerminal = term.IsTerminal
	openSink   = generator.OpenSink
)

func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

// App holds everything a subcommand needs. It is built once per command
// invocation and closed before exit.
type App struct {
	Config   config.Config
	Log      *log.Logger
	Registry *registry.Registry
	History  *history.History

	progress  io.Writer
	player    *generator.Renderer
	renderers []*generator.Renderer
}

// Setup loads .env and the config file, then builds the logger and the
// variant registry.
func Setup(configPath string, stderr io.Writer) (*App, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	tty := writerIsTerminal(stderr)
	logger, err := log.New(log.Options{
		Level:   cfg.Log.Level,
		Path:    cfg.Log.Path,
		Console: stderr,
		NoColor: !tty,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Log:      logger,
		Registry: registry.NewDefault(logger.Logger),
		History:  history.New(cfg.History.Limit),
	}
	if tty {
		app.progress = stderr
	}

	names := make([]string, 0, len(cfg.VariantFiles))
	for name := range cfg.VariantFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := app.Registry.LoadFile(name, cfg.VariantFiles[name]); err != nil {
			logger.Close()
			return nil, err
		}
	}

	logger.Debug().Str("config", configPath).Str("variant", cfg.Variant).Msg("application configured")
	return app, nil
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(int(f.Fd()))
}

// Converter returns a converter for variant, or for the configured
// variant when variant is empty.
func (a *App) Converter(variant string) (*converter.Converter, error) {
	if variant == "" {
		variant = a.Config.Variant
	}
	return a.Registry.NewConverter(variant, converter.WithLogger(a.Log.Logger))
}

// Renderer opens the configured audio backend and returns a Renderer
// playing with profile. It is closed by Close.
func (a *App) Renderer(profile generator.Profile) (*generator.Renderer, error) {
	format := a.Config.Format()
	sink, err := openSink(a.Config.Audio.Backend, format)
	if err != nil {
		return nil, err
	}

	opts := []generator.Option{generator.WithLogger(a.Log.Logger)}
	if a.progress != nil {
		opts = append(opts, generator.WithProgress(progressBar(a.progress, 30)))
	}
	r, err := generator.New(profile, format, sink, opts...)
	if err != nil {
		sink.Close()
		return nil, err
	}
	a.renderers = append(a.renderers, r)
	return r, nil
}

// Player returns the Renderer for the configured timing, opening the
// audio backend on first use.
func (a *App) Player() (*generator.Renderer, error) {
	if a.player != nil {
		return a.player, nil
	}
	r, err := a.Renderer(a.Config.Profile())
	if err != nil {
		return nil, err
	}
	a.player = r
	return r, nil
}

func (a *App) Close() error {
	var errs []error
	for _, r := range a.renderers {
		errs = append(errs, r.Close())
	}
	a.renderers = nil
	a.player = nil
	errs = append(errs, a.Log.Close())
	return errors.Join(errs...)
}

// fail prints err the way every subcommand reports failures and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "morse: %v\n", err)
	os.Exit(1)
}

// run sets up an App, hands it to fn and closes it afterwards. ctx is
// cancelled on interrupt.
func run(configPath string, fn func(ctx context.Context, app *App) error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := Setup(configPath, os.Stderr)
	if err != nil {
		fail(err)
	}
	err = fn(ctx, app)
	if closeErr := app.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fail(err)
	}
}
