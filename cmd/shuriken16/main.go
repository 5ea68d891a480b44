package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/chubbymaggie/shuriken16/shuriken"
	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/headless"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/sdl2"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/ssh"
	"github.com/chubbymaggie/shuriken16/shuriken/backend/terminal"
	"github.com/chubbymaggie/shuriken16/shuriken/demo"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/timing"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "shuriken16"
	app.Description = "A 16-bit style tile and sprite engine"
	app.Usage = "shuriken16 [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Output backend: terminal, headless, sdl2 or ssh",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save PNG snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "resolution",
			Usage: "Render resolution policy: fixed or pixel-perfect",
			Value: "fixed",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "Render height for the fixed policy",
			Value: display.DefaultRenderHeight,
		},
		cli.IntFlag{
			Name:  "min-height",
			Usage: "Smallest render height for the pixel-perfect policy",
			Value: 200,
		},
		cli.IntFlag{
			Name:  "max-height",
			Usage: "Largest render height for the pixel-perfect policy",
			Value: display.DefaultRenderHeight,
		},
		cli.Float64Flag{
			Name:  "min-aspect",
			Usage: "Narrowest render aspect ratio",
			Value: float64(video.DefaultMinAspectRatio),
		},
		cli.Float64Flag{
			Name:  "max-aspect",
			Usage: "Widest render aspect ratio",
			Value: float64(video.DefaultMaxAspectRatio),
		},
		cli.IntFlag{
			Name:  "window-width",
			Usage: "Window width for the sdl2 and headless backends",
			Value: display.DefaultWindowWidth,
		},
		cli.IntFlag{
			Name:  "window-height",
			Usage: "Window height for the sdl2 and headless backends",
			Value: display.DefaultWindowHeight,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame limiter: adaptive or ticker (default: ticker for ssh, adaptive otherwise)",
		},
		cli.StringFlag{
			Name:  "ssh-addr",
			Usage: "Listen address for the ssh backend",
			Value: ":2222",
		},
		cli.StringFlag{
			Name:  "host-key",
			Usage: "PEM host key for the ssh backend (default: generated per run)",
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of the demo scene",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Show the debug panel where the backend has one",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running shuriken16", "error", err)
		os.Exit(1)
	}
}

type limitedRunner interface {
	shuriken.Runner
	SetFrameLimiter(l timing.Limiter)
}

func run(c *cli.Context) error {
	target, err := resolutionTarget(c.String("resolution"), c.Int("height"),
		c.Int("min-height"), c.Int("max-height"), c.Float64("min-aspect"), c.Float64("max-aspect"))
	if err != nil {
		return err
	}

	testPattern := c.Bool("test-pattern")
	name := "demo"
	var runner limitedRunner
	if testPattern {
		slog.Info("Running in test pattern mode")
		name = "testpattern"
		runner = shuriken.NewTestPatternRunner(target)
	} else {
		scene, err := demo.New()
		if err != nil {
			return fmt.Errorf("failed to build demo scene: %w", err)
		}
		runner = shuriken.NewEngine(scene.State, target)
	}

	b, err := newBackend(c, name)
	if err != nil {
		return err
	}

	if _, ok := b.(*headless.Backend); !ok {
		kind := c.String("limiter")
		if kind == "" {
			kind = "adaptive"
			if c.String("backend") == "ssh" {
				kind = "ticker"
			}
		}
		limiter, err := newLimiter(kind)
		if err != nil {
			return err
		}
		if t, ok := limiter.(*timing.TickerLimiter); ok {
			defer t.Stop()
		}
		runner.SetFrameLimiter(limiter)
	}

	return shuriken.NewLoop(runner, b).Run(backend.BackendConfig{
		Title:        "shuriken16",
		WindowWidth:  c.Int("window-width"),
		WindowHeight: c.Int("window-height"),
		ShowDebug:    c.Bool("debug"),
		TestPattern:  testPattern,
	})
}

func newBackend(c *cli.Context, name string) (backend.Backend, error) {
	switch c.String("backend") {
	case "terminal":
		return terminal.New(), nil
	case "sdl2":
		return sdl2.New(), nil
	case "ssh":
		return ssh.New(ssh.Config{
			Addr:        c.String("ssh-addr"),
			HostKeyFile: c.String("host-key"),
		}), nil
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames option with a positive value")
		}
		snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), name)
		if err != nil {
			return nil, err
		}
		return headless.New(frames, snapshots), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.String("backend"))
	}
}

func newLimiter(kind string) (timing.Limiter, error) {
	switch kind {
	case "adaptive":
		return timing.NewAdaptiveLimiter(), nil
	case "ticker":
		return timing.NewTickerLimiter(), nil
	default:
		return nil, fmt.Errorf("unknown frame limiter %q", kind)
	}
}

func resolutionTarget(mode string, height, minHeight, maxHeight int, minAspect, maxAspect float64) (video.ResolutionTarget, error) {
	if minAspect <= 0 || maxAspect < minAspect {
		return video.ResolutionTarget{}, fmt.Errorf("invalid aspect ratio range %.3f..%.3f", minAspect, maxAspect)
	}
	switch mode {
	case "fixed":
		if height <= 0 {
			return video.ResolutionTarget{}, fmt.Errorf("invalid render height %d", height)
		}
		return video.NewFixedVerticalResolutionWithAspectRatio(height, float32(minAspect), float32(maxAspect)), nil
	case "pixel-perfect":
		if minHeight <= 0 || maxHeight < minHeight {
			return video.ResolutionTarget{}, fmt.Errorf("invalid render height range %d..%d", minHeight, maxHeight)
		}
		return video.NewPixelPerfectWithAspectRatio(minHeight, maxHeight, float32(minAspect), float32(maxAspect)), nil
	default:
		return video.ResolutionTarget{}, fmt.Errorf("unknown resolution policy %q", mode)
	}
}
