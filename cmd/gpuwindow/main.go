// Command gpuwindow opens a window on the best discrete GPU and draws an
// image into it until the window is closed.
//
// Usage:
//
//	gpuwindow [-config file.yaml] [-v] [key=value ...]
//
// Recognized keys are dawn-backend (d3d12, metal, vulkan, gl) and dlldir.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"runtime"

	glfw3 "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gpuwindow"
	"github.com/gogpu/gpuwindow/blit"
	"github.com/gogpu/gpuwindow/driver/webgpu"
	"github.com/gogpu/gpuwindow/event"
	"github.com/gogpu/gpuwindow/platform/glfw"
)

func init() {
	// The window system must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [key=value ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, flag.Args(), *verbose); err != nil {
		log.Fatalf("gpuwindow: %v", err)
	}
}

func run(configPath string, tokens []string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	flags, err := cfg.mergeFlags(tokens)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gpuwindow.SetLogger(logger)

	img, err := loadImage(cfg.Image, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	inst := webgpu.New(gputypes.BackendsAll)
	defer inst.Release()

	m, err := gpuwindow.NewManager(inst, glfw.New(), flags)
	if err != nil {
		return err
	}
	a, err := m.RequestAdapter()
	if err != nil {
		return err
	}
	wa, ok := a.(*webgpu.Adapter)
	if !ok {
		return fmt.Errorf("unexpected adapter type %T", a)
	}
	dev, err := wa.RequestDevice("gpuwindow")
	if err != nil {
		return err
	}
	defer dev.Release()

	quit := false
	handler := func(e event.Event) {
		switch e := e.(type) {
		case event.Quit:
			quit = true
		case event.Key:
			if glfw3.Key(e.Key) == glfw3.KeyEscape && glfw3.Action(e.Action) == glfw3.Press {
				quit = true
			}
		default:
			logger.Debug("gpuwindow: event", "type", e.Type().String(), "args", e.Args())
		}
	}

	ctx, err := m.CreateWindow(cfg.Width, cfg.Height, cfg.Title, handler)
	if err != nil {
		return err
	}
	defer func() {
		if err := ctx.Close(); err != nil && !errors.Is(err, gpuwindow.ErrClosed) {
			logger.Warn("gpuwindow: close", "err", err)
		}
	}()

	if err := ctx.Configure(dev); err != nil {
		return err
	}
	b, err := blit.New(dev.WGPU(), wa.Properties().BackendType, gpuwindow.PreferredCanvasFormat(), logger)
	if err != nil {
		return err
	}
	defer b.Release()

	width, height := ctx.Size()
	for !quit {
		if err := drawFrame(ctx, b, img, width, height); err != nil {
			return err
		}
		if err := ctx.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

// drawFrame blits img onto the next back buffer. Refresh presents it.
func drawFrame(ctx *gpuwindow.Context, b *blit.Blitter, img image.Image, width, height int) error {
	view, err := ctx.CurrentTexture().CreateView()
	if err != nil {
		return err
	}
	defer view.Release()

	tv, ok := view.(*webgpu.TextureView)
	if !ok {
		return fmt.Errorf("unexpected texture view type %T", view)
	}
	return b.Draw(tv.View(), img, width, height)
}
