package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
)

const appName = "bouquet"

var version = "dev"

// app carries the persistent flags and the loaded configuration into every
// subcommand.
type app struct {
	configPath string
	assetDir   string
	verbose    bool
	cfg        *Config
}

func (a *app) level() log.Level {
	if a.verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Arrange flowers into a bouquet and share it as a link",
		Long:          `Bouquet is a terminal editor for flower bouquets. Place, move, rotate and resize flowers, add note cards, pick a wrapping paper and share the result as a link that opens read-only.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), "")
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	root.PersistentFlags().StringVar(&a.assetDir, "assets", "", "directory holding the sprite images")

	root.AddCommand(newEditCmd(a))
	root.AddCommand(newViewCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if a.assetDir != "" {
		cfg.AssetDir = expandPath(a.assetDir)
	}
	a.cfg = cfg

	ctx := withLogger(cmd.Context(), newLogger(os.Stderr, a.level()))
	cmd.SetContext(ctx)
	return nil
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open an empty bouquet in the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), "")
		},
	}
}

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view LINK",
		Short: "Open a shared bouquet read-only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd.Context(), args[0])
		},
	}
}

type renderOpts struct {
	output string
	taps   []string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOpts{output: "bouquet.png"}

	cmd := &cobra.Command{
		Use:   "render LINK",
		Short: "Render a shared bouquet to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringArrayVar(&opts.taps, "tap", nil, "tap the canvas at x,y before rendering (repeatable)")
	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shared bouquets as PNG images over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listen != "" {
				a.cfg.Listen = listen
			}
			return a.runServe(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config, :8080)")
	return cmd
}

// newRand seeds placement randomness from the config, or from the clock when
// no seed is set.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// session is one editor with everything it draws with.
type session struct {
	assets   *Assets
	editor   *Editor
	renderer *Renderer
	loaded   <-chan struct{}
}

func newSession(ctx context.Context, cfg *Config) (*session, error) {
	face, err := newNoteFace()
	if err != nil {
		return nil, err
	}
	assets := NewAssets()
	loaded := assets.Load(ctx, cfg.AssetDir)
	scene := NewScene(assets, newRand(cfg.Seed))
	return &session{
		assets:   assets,
		editor:   NewEditor(scene, NewHitTester(assets)),
		renderer: NewRenderer(assets, face),
		loaded:   loaded,
	}, nil
}

// runTUI starts the terminal editor, in view-only mode when link is set. The
// screen belongs to the UI, so logs go to a file.
func (a *app) runTUI(ctx context.Context, link string) error {
	var w io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		defer f.Close()
		w = f
	}
	logger := newLogger(w, a.level())
	ctx = withLogger(ctx, logger)

	s, err := newSession(ctx, a.cfg)
	if err != nil {
		return err
	}

	m := newModel(ctx, a.cfg, s.editor, s.renderer, s.assets)
	if link != "" {
		if err := s.editor.Import(ctx, link); err != nil {
			m.errorMessage = "link corrupted"
		}
	}
	logger.Info("starting", "assets", a.cfg.AssetDir, "view_only", s.editor.ViewOnly())

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}

func (a *app) runRender(ctx context.Context, link string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := newSession(ctx, a.cfg)
	if err != nil {
		return err
	}
	select {
	case <-s.loaded:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := s.editor.Import(ctx, link); err != nil {
		return err
	}
	for _, tap := range opts.taps {
		x, y, err := parsePoint(tap)
		if err != nil {
			return err
		}
		s.editor.PointerDown(x, y)
		s.editor.PointerUp()
	}

	im := flatten(s.editor.Render(s.renderer), paperColor(a.cfg.Paper))
	if err := gg.SavePNG(opts.output, im); err != nil {
		return wrapError(ErrCodeExportFailed, err, "write %s", opts.output)
	}
	prog.done("rendered", "path", opts.output, "items", s.editor.Scene().Len())
	return nil
}

// parsePoint reads an "x,y" pair of canvas coordinates.
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("point %q: %w", s, err)
	}
	return x, y, nil
}
