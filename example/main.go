// Example opens a window with a few dropdowns in a focus group.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./example/ --dir up --options "Red,Green,Blue" --verbose
//
// Mouse: click to open, click a row to select, drag or wheel to scroll.
// Keyboard: Tab moves focus, arrows open and navigate, Enter confirms, Esc
// cancels. Page Up / Page Down and Space emulate a rotary encoder.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/dropdown"
	"github.com/go-theft-auto/dropdown/backend/opengl"
)

var background = dropdown.RGBA(31, 31, 36, 255)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "dropdown example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type config struct {
	dir       string
	maxHeight float32
	options   string
	style     string
	logFile   string
	verbose   bool
	rtl       bool
	basicFont bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:          "dropdown-example",
		Short:        "Show dropdown controls in a GLFW window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.dir, "dir", "down", "overlay direction: down, up, left, right")
	f.Float32Var(&cfg.maxHeight, "max-height", 0, "overlay height bound (0: 3/4 of the window)")
	f.StringVar(&cfg.options, "options", "Apple,Banana,Cherry,Date,Elderberry,Fig,Grape,Honeydew,Kiwi,Lemon", "comma separated options")
	f.StringVar(&cfg.style, "style", "default", "style: default, dark, light")
	f.StringVar(&cfg.logFile, "log-file", "", "write logs to a rotating file instead of stderr")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log transitions")
	f.BoolVar(&cfg.rtl, "rtl", false, "right-to-left base direction")
	f.BoolVar(&cfg.basicFont, "basic-font", false, "measure text with the 7x13 face")
	return cmd
}

func run(cfg config) error {
	dir, ok := dropdown.ParseDirection(cfg.dir)
	if !ok {
		return fmt.Errorf("unknown direction %q", cfg.dir)
	}

	if cfg.logFile != "" {
		logFile := &lumberjack.Logger{
			Filename:   cfg.logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		defer logFile.Close()
		dropdown.SetLogOutput(logFile)
		slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))
	}
	dropdown.SetVerbose(cfg.verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	scrOpts := []dropdown.ScreenOption{
		dropdown.WithViewport(dropdown.Rect{W: windowWidth, H: windowHeight}),
		dropdown.WithAllocator(dropdown.NewBudgetAllocator(64 << 10)),
	}
	if cfg.rtl {
		scrOpts = append(scrOpts, dropdown.WithBaseDir(dropdown.BaseDirRTL))
	}
	if cfg.basicFont {
		scrOpts = append(scrOpts, dropdown.WithFont(dropdown.BasicFont()))
	}
	scr := dropdown.NewScreen(scrOpts...)

	group := dropdown.NewGroup(scr)
	scr.SetInputGroup(group)

	input := opengl.NewGLFWInputAdapter(window)
	input.BindEncoder(group)

	buildControls(scr, group, cfg, dir)

	last := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		in := input.Update(dt)
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		if r := (dropdown.Rect{W: float32(w), H: float32(h)}); r != scr.Viewport() {
			scr.SetViewport(r)
			renderer.Resize(w, h)
		}
		scr.Update(in)

		renderer.Clear(background)

		if err := scr.Render(renderer); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		scr.TakeInvalidated()

		window.SwapBuffers()
	}
	return nil
}

func buildControls(scr *dropdown.Screen, group *dropdown.Group, cfg config, dir dropdown.Direction) {
	styles := dropdown.DefaultStyles()
	switch cfg.style {
	case "dark":
		styles = dropdown.DarkStyles()
	case "light":
		styles = dropdown.LightStyles()
	}

	logChange := func(name string) dropdown.ChangeHandler {
		return func(c *dropdown.Control, i int) {
			slog.Info("selection changed", "control", name, "index", i, "option", c.SelectedString())
		}
	}

	opts := []dropdown.Option{
		dropdown.WithOptions(strings.ReplaceAll(cfg.options, ",", "\n")),
		dropdown.WithDirection(dir),
		dropdown.WithPos(40, 40),
		dropdown.WithWidth(180),
		dropdown.WithStyles(styles),
		dropdown.WithGroup(group),
		dropdown.OnChange(logChange("fruit")),
	}
	if cfg.maxHeight > 0 {
		opts = append(opts, dropdown.WithMaxHeight(cfg.maxHeight))
	}
	if cfg.rtl {
		opts = append(opts, dropdown.WithTextProcessor(dropdown.ProcessRTL))
	}
	dropdown.New(scr, opts...)

	// Static options near the bottom edge open upwards on their own.
	dropdown.New(scr,
		dropdown.WithPos(40, scr.Viewport().H-60),
		dropdown.WithStyles(styles),
		dropdown.WithGroup(group),
		dropdown.OnChange(logChange("static")),
	)

	menu := dropdown.New(scr,
		dropdown.WithStaticOptions("New\nOpen\nSave\nQuit"),
		dropdown.WithText("Menu"),
		dropdown.WithNoSymbol(),
		dropdown.WithDirection(dropdown.DirRight),
		dropdown.WithPos(300, 40),
		dropdown.WithWidth(100),
		dropdown.WithStyles(styles),
		dropdown.WithGroup(group),
	)
	menu.OnValueChanged(func(c *dropdown.Control, i int) {
		slog.Info("menu", "item", c.SelectedString())
		if err := c.SetSelected(0); err != nil {
			slog.Warn("menu reset failed", "err", err)
		}
	})
	if err := menu.AddOption("Export", 3); err != nil {
		slog.Warn("add option failed", "err", err)
	}
}
