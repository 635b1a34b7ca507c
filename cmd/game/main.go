package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/younwookim/mglib/internal/application/engine"
	"github.com/younwookim/mglib/internal/application/input"
	"github.com/younwookim/mglib/internal/application/scene"
	"github.com/younwookim/mglib/internal/application/scene/playing"
	"github.com/younwookim/mglib/internal/application/scene/title"
	"github.com/younwookim/mglib/internal/infrastructure/config"
	"github.com/younwookim/mglib/internal/infrastructure/content"
)

type options struct {
	contentDir string
	recordPath string
	replayPath string
	watch      bool
}

func main() {
	// Parse command line flags
	contentFlag := flag.String("content", "", "Read content from this directory instead of the embedded copy")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay input from file")
	watchFlag := flag.Bool("watch", false, "Reload the atlas when content files change on disk")
	jsonFlag := flag.Bool("log-json", false, "Write JSON logs")
	debugFlag := flag.Bool("debug", false, "Enable debug logs")
	flag.Parse()

	logger, err := newLogger(*jsonFlag, *debugFlag)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := options{
		contentDir: *contentFlag,
		recordPath: *recordFlag,
		replayPath: *replayFlag,
		watch:      *watchFlag,
	}
	if err := run(opts, logger); err != nil {
		logger.Fatal("game stopped", zap.Error(err))
	}
}

func run(opts options, logger *zap.Logger) error {
	// Load engine configuration from the embedded filesystem
	configs, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(configs, "configs").LoadEngine()
	if err != nil {
		return err
	}

	// Watching needs files on disk
	if opts.watch && opts.contentDir == "" {
		opts.contentDir = cfg.Content.Root
	}

	res, err := newResources(opts.contentDir, cfg.Content.Atlas, logger)
	if err != nil {
		return err
	}

	if opts.watch {
		watcher, err := content.NewWatcher(filepath.Dir(res.Descriptions.DiskPath(cfg.Content.Atlas)))
		if err != nil {
			return fmt.Errorf("failed to watch content: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		go func() {
			for err := range watcher.Errors {
				logger.Warn("content watcher", zap.Error(err))
			}
		}()
		res.Changes = watcher
		logger.Info("watching content", zap.String("dir", opts.contentDir))
	}

	session, err := newInputSession(input.NewEbitenPoller(), opts.recordPath, opts.replayPath, logger)
	if err != nil {
		return err
	}

	e, err := engine.New(*cfg, session.Poller(), engine.WithLogger(logger))
	if err != nil {
		return err
	}

	var startTitle, startPlaying func() scene.Scene
	startTitle = func() scene.Scene { return title.New(e, res, startPlaying) }
	startPlaying = func() scene.Scene { return playing.New(e, res, startTitle) }
	e.ChangeScene(startTitle())

	runErr := e.Run()
	if err := session.Finish(); err != nil {
		logger.Error("failed to save recording", zap.Error(err))
	}
	return runErr
}

// newResources reads content from dir, or from the embedded copy when dir
// is empty.
func newResources(dir, atlas string, logger *zap.Logger) (*scene.Resources, error) {
	if dir != "" {
		return &scene.Resources{
			Descriptions: config.NewLoader(dir),
			Textures:     content.NewManager(dir, content.WithLogger(logger)),
			Atlas:        atlas,
		}, nil
	}

	embedded, err := fs.Sub(contentFS, "content")
	if err != nil {
		return nil, fmt.Errorf("failed to get content subfs: %w", err)
	}
	return &scene.Resources{
		Descriptions: config.NewFSLoader(embedded, "content"),
		Textures:     content.NewFSManager(embedded, "content", content.WithLogger(logger)),
		Atlas:        atlas,
	}, nil
}
