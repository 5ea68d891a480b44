package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chubbymaggie/shuriken16/shuriken/backend"
	"github.com/chubbymaggie/shuriken16/shuriken/debug"
	"github.com/chubbymaggie/shuriken16/shuriken/display"
	"github.com/chubbymaggie/shuriken16/shuriken/input/action"
	"github.com/chubbymaggie/shuriken16/shuriken/input/event"
	"github.com/chubbymaggie/shuriken16/shuriken/video"
)

// Backend implements the Backend interface for automated testing and batch processing
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	saved          []string
}

var _ backend.Backend = (*Backend)(nil)

var quitEvents = []backend.InputEvent{{Action: action.EngineQuit, Type: event.Press}}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	Name      string // Scene name for snapshot filenames
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	if config.TestPattern {
		slog.Info("Headless test pattern mode - test patterns verified, exiting")
		// Will signal quit on first Update() call for test pattern mode
		return nil
	}

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"window", fmt.Sprintf("%dx%d", config.WindowWidth, config.WindowHeight),
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	// Set up debug logging for headless mode
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	// The virtual window never changes size
	config.Callbacks.Resize(config.WindowWidth, config.WindowHeight)

	return nil
}

// Update counts the frame, writes any due snapshot and asks the loop to
// quit once maxFrames have been presented
func (h *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	if h.config.TestPattern {
		return quitEvents, nil
	}

	h.frameCount++
	snap := h.snapshotConfig
	due := snap.Enabled && h.frameCount%snap.Interval == 0
	if due {
		h.saveSnapshot(frame)
	}

	if h.frameCount%display.TargetFPS == 0 {
		size := frame.Size()
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames,
			"render", fmt.Sprintf("%dx%d", size.Width, size.Height))
	}

	if h.maxFrames <= 0 || h.frameCount < h.maxFrames {
		return nil, nil
	}

	// The last frame is always captured
	if snap.Enabled && !due {
		h.saveSnapshot(frame)
	}
	slog.Info("Headless execution completed", "frames", h.frameCount, "snapshots", len(h.saved),
		"snapshot_dir", snap.Directory)
	return quitEvents, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames presented so far
func (h *Backend) FrameCount() int {
	return h.frameCount
}

// Snapshots returns the paths written so far
func (h *Backend) Snapshots() []string {
	return h.saved
}

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters
func CreateSnapshotConfig(interval int, directory, name string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		Name:     name,
	}

	if !config.Enabled {
		return config, nil
	}

	// Set up snapshot directory
	if directory == "" {
		tempDir, err := os.MkdirTemp("", "shuriken-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	return config, nil
}

// saveSnapshot saves a PNG snapshot for the current frame at the
// destination blit size
func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	pngBaseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.Name, h.frameCount)
	dest := h.config.Callbacks.Dest(frame.Size())

	path, err := debug.SaveFramePNGToDir(frame, dest, pngBaseName, h.snapshotConfig.Directory)
	if err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
		return
	}
	h.saved = append(h.saved, path)
}
