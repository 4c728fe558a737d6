// Package cli provides the command-line interface for marquee.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/domain"
	"marquee/internal/eventbus"
	"marquee/internal/items"
	"marquee/internal/logging"
	"marquee/internal/ui"
)

// Version is set by the linker for release builds
var Version = "dev"

// flags holds the raw command-line values; only flags the user set override the config
type flags struct {
	configPath   string
	direction    string
	cycle        time.Duration
	end          string
	noUserScroll bool
	resumeDelay  time.Duration
	separator    string
	count        int
	pattern      string
	fps          int
	logFile      string
	debug        bool
	saveConfig   bool
}

// NewRootCmd creates the marquee command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *flags) {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "marquee [items-file]",
		Short: "Auto-scrolling ticker for the terminal",
		Long: `marquee scrolls a strip of items across the terminal, end to end, over a fixed cycle.

Items come from a file (one per line, # comments skipped), from stdin when it is
piped, or from --count and --pattern. Drag the strip with the mouse or nudge it with
the arrow keys; auto-scroll resumes after a short pause.`,
		Example: `  marquee headlines.txt
  marquee --count 100 --pattern "Slide %d" --end loop
  git log --oneline | marquee --direction reverse --cycle 2m`,
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	fl := rootCmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Configuration file path (default: user config dir)")
	fl.StringVarP(&f.direction, "direction", "d", "", "Scroll direction: forward or reverse")
	fl.DurationVar(&f.cycle, "cycle", 0, "Time for one full end-to-end sweep")
	fl.StringVar(&f.end, "end", "", "Behavior at the end: loop or ping-pong")
	fl.BoolVar(&f.noUserScroll, "no-user-scroll", false, "Disable mouse and keyboard scrolling")
	fl.DurationVar(&f.resumeDelay, "resume-delay", 0, "Quiet period after a drag before auto-scroll resumes")
	fl.StringVarP(&f.separator, "separator", "s", "", "Separator placed between items")
	fl.IntVarP(&f.count, "count", "n", 0, "Generate this many items instead of reading a file")
	fl.StringVar(&f.pattern, "pattern", "Item %d", "Pattern for generated items; %d is the 1-based number")
	fl.IntVar(&f.fps, "fps", 0, "Frames per second (1-1000)")
	fl.StringVar(&f.logFile, "log-file", logging.DefaultFile, "Log file path")
	fl.BoolVar(&f.debug, "debug", false, "Enable debug logging")
	fl.BoolVar(&f.saveConfig, "save-config", false, "Write the merged settings to the config file before starting")

	return rootCmd, f
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, f *flags, args []string) error {
	logger, closer, err := logging.Open(f.logFile, f.debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()
	logging.SubscribeBus(bus, logger)

	configSvc := config.NewConfigServiceAt(f.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, f, cfg); err != nil {
		return err
	}
	if f.saveConfig {
		if err := configSvc.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Config saved to %s\n", configSvc.Path())
	}

	stdinPiped := !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())
	src, err := resolveSource(cmd, f, cfg, args, os.Stdin, stdinPiped)
	if err != nil {
		return err
	}
	logger.Info().
		Str("source", src.name).
		Str("mode", src.source.Mode().String()).
		Int("items", src.source.Len()).
		Str("direction", cfg.Direction.String()).
		Stringer("cycle", cfg.CycleDuration).
		Str("end", cfg.EndBehavior.String()).
		Msg("starting")

	model, err := ui.NewModel(cfg, src.source, src.name, bus)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if src.fromStdin {
		// stdin carries the items; keys come from the terminal
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if src.path != "" && cfg.UISettings.WatchItems {
		stop, err := watchItems(ctx, src.path, p, logger)
		if err != nil {
			// Keep scrolling the static content
			logger.Warn().Err(err).Str("path", src.path).Msg("file watching disabled")
		} else {
			defer stop()
		}
	}

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Str("state", model.Driver().State().String()).Msg("exited normally")
	return nil
}

// applyFlags overlays explicitly set flags on the loaded config and validates the result
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if changed("direction") {
		d, err := domain.ParseDirection(f.direction)
		if err != nil {
			return err
		}
		cfg.Direction = d
	}
	if changed("end") {
		b, err := domain.ParseEndBehavior(f.end)
		if err != nil {
			return err
		}
		cfg.EndBehavior = b
	}
	if changed("cycle") {
		cfg.CycleDuration = config.Duration(f.cycle)
	}
	if changed("resume-delay") {
		cfg.ResumeDelay = config.Duration(f.resumeDelay)
	}
	if changed("no-user-scroll") {
		cfg.UserScrollEnabled = !f.noUserScroll
	}
	if changed("separator") {
		cfg.UISettings.Separator = f.separator
	}
	if changed("fps") {
		if f.fps < 1 || f.fps > 1000 {
			return fmt.Errorf("%w: --fps %d outside 1..1000", domain.ErrInvalidConfig, f.fps)
		}
		cfg.UISettings.FrameInterval = config.Duration(time.Second / time.Duration(f.fps))
	}
	return cfg.Validate()
}

type resolvedSource struct {
	source    items.Source
	name      string
	path      string // set when items come from a file
	fromStdin bool
}

// resolveSource picks the item source: a file, --count, or piped stdin
func resolveSource(cmd *cobra.Command, f *flags, cfg *config.Config, args []string, stdin io.Reader, stdinPiped bool) (resolvedSource, error) {
	counted := cmd.Flags().Changed("count")
	sep := cfg.UISettings.Separator

	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if !counted {
		path = cfg.ItemsFile
	}

	var res resolvedSource
	switch {
	case path != "" && counted:
		return res, fmt.Errorf("%w: an items file and --count are mutually exclusive", domain.ErrInvalidSource)

	case path != "":
		lines, err := items.LoadFile(path)
		if err != nil {
			return res, err
		}
		res = resolvedSource{source: items.FromLines(lines, sep), name: filepath.Base(path), path: path}

	case counted:
		res = resolvedSource{
			source: items.FromPattern(f.count, f.pattern, sep),
			name:   fmt.Sprintf("%d generated", f.count),
		}

	case stdinPiped:
		lines, err := items.LoadLines(stdin)
		if err != nil {
			return res, fmt.Errorf("failed to read stdin: %w", err)
		}
		res = resolvedSource{source: items.FromLines(lines, sep), name: "stdin", fromStdin: true}

	default:
		return res, fmt.Errorf("%w: no items; pass a file, use --count, or pipe lines on stdin", domain.ErrInvalidSource)
	}

	if err := res.source.Validate(); err != nil {
		return resolvedSource{}, err
	}
	return res, nil
}

// watchItems reloads the items file into the program until ctx ends
func watchItems(ctx context.Context, path string, p *tea.Program, logger zerolog.Logger) (func(), error) {
	w, err := items.NewWatcher(path, items.DefaultReloadInterval,
		func(lines []string) {
			p.Send(ui.ItemsLoadedMsg{Path: path, Lines: lines})
		},
		func(err error) {
			p.Send(ui.ItemsLoadedMsg{Path: path, Err: err})
		},
	)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Run(ctx)
	}()
	logger.Debug().Str("path", path).Msg("watching items file")

	return func() {
		cancel()
		<-done
		if err := w.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing watcher")
		}
	}, nil
}
