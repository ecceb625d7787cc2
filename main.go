package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-life/model"
	"github.com/sheikhrachel/sparse-life/utils"
)

var errQuit = errors.New("quit")

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "config.json", "path to the JSON configuration file")
		worldsDir   = flag.String("worlds", "", "directory holding <pattern>.txt configurations")
		interactive = flag.Bool("interactive", true, "draw on a full-screen terminal and accept key input")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [pattern]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Using default configuration (%s not loaded)\n", *configPath)
		config = utils.DefaultConfig()
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "worlds":
			config.WorldsDir = *worldsDir
		case "interactive":
			config.Interactive = *interactive
		}
	})
	if flag.NArg() > 0 {
		config.Pattern = flag.Arg(0)
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, closeLog, err := openLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer closeLog()

	original, err := loadWorld(config)
	if err != nil {
		logger.Error("failed to load world", "path", worldPath(config), "error", err)
		return 1
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := newGame(config, original, logger)
	if config.Interactive {
		err = runInteractive(ctx, g)
	} else {
		err = runPlain(ctx, g, model.NewTerminalRenderer())
	}
	g.logSummary()
	if err != nil {
		logger.Error("game failed", "error", err)
		return 1
	}
	return 0
}

// openLogger writes to the configured log file in interactive mode, where
// stderr belongs to the screen, and to stderr otherwise
func openLogger(config utils.Config) (*slog.Logger, func(), error) {
	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)
	if config.Interactive && config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "[openLogger] failed to open log file: %+v", config.LogFile)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := utils.NewLogger(config.LogLevel, config.LogFormat, out)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// runInteractive drives the game on a tcell screen. Input is polled on its own
// goroutine and handed to the simulation goroutine, which alone owns the world.
func runInteractive(ctx context.Context, g *game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[runInteractive] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[runInteractive] failed to initialise screen")
	}
	defer screen.Fini()

	renderer := model.NewScreenRenderer(screen)
	g.viewport = renderer.Viewport(g.viewport)

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		commands  = make(chan command, 16)
	)

	// wake PollEvent once the group is done
	eg.Go(func() error {
		<-egCtx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil || egCtx.Err() != nil {
				return nil
			}

			var (
				cmd command
				ok  bool
			)
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, ok = commandForKey(ev)
			case *tcell.EventResize:
				cmd, ok = cmdResize, true
			}
			if !ok {
				continue
			}

			select {
			case commands <- cmd:
			case <-egCtx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		ticker := time.NewTicker(g.config.FrameRate)
		defer ticker.Stop()

		renderer.Display(g.world, g.viewport, g.statusLine())
		for {
			select {
			case <-egCtx.Done():
				return nil
			case cmd := <-commands:
				if cmd == cmdResize {
					screen.Sync()
					g.viewport = renderer.Viewport(g.viewport)
				} else if g.apply(cmd) {
					return errQuit
				}
			case <-ticker.C:
				if !g.paused && g.advance() {
					return errQuit
				}
			}
			renderer.Display(g.world, g.viewport, g.statusLine())
		}
	})

	if err = eg.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// runPlain prints frames to stdout the way a log-friendly terminal would
func runPlain(ctx context.Context, g *game, renderer *model.TerminalRenderer) error {
	for {
		if err := renderer.Clear(); err != nil {
			g.logger.Debug("terminal not cleared", "error", err)
		}
		if _, err := fmt.Fprintln(renderer.Out, g.statusLine()); err != nil {
			return errors.Wrap(err, "[runPlain] failed to write status")
		}
		if err := renderer.Display(g.world, g.viewport); err != nil {
			return err
		}

		if g.advance() {
			g.logger.Info("reached maximum generations limit", "max_generations", g.config.MaxGenerations)
			return nil
		}

		// Wait before next frame
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(g.config.FrameRate):
		}
	}
}
