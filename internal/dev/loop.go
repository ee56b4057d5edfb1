package dev

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/okra-platform/tlbind/internal/build"
	"github.com/okra-platform/tlbind/internal/config"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the loop waits for a burst of events to settle
const DefaultDebounce = 100 * time.Millisecond

// Loop rebuilds the bindings every time the watched schema files change.
// Builds run one at a time on the loop goroutine.
type Loop struct {
	builder    build.Builder
	schemaPath string
	patterns   []string
	exclude    []string
	debounce   time.Duration
	onBuild    func(*build.BuildArtifacts, error)
	logger     zerolog.Logger
}

// NewLoop creates a watch loop for the schema of cfg
func NewLoop(cfg *config.Config, builder build.Builder, logger zerolog.Logger) *Loop {
	return &Loop{
		builder:    builder,
		schemaPath: cfg.Schema,
		patterns:   cfg.Dev.Watch,
		exclude:    cfg.Dev.Exclude,
		debounce:   DefaultDebounce,
		onBuild:    func(*build.BuildArtifacts, error) {},
		logger:     logger.With().Str("component", "dev").Logger(),
	}
}

// WithDebounce sets the settle time between the last event and the rebuild
func (l *Loop) WithDebounce(d time.Duration) *Loop {
	l.debounce = d
	return l
}

// OnBuild registers a callback invoked after every build
func (l *Loop) OnBuild(fn func(*build.BuildArtifacts, error)) *Loop {
	l.onBuild = fn
	return l
}

// Run builds once, then rebuilds on every change until ctx is cancelled.
// Build failures are logged and the loop keeps watching.
func (l *Loop) Run(ctx context.Context) error {
	changes := make(chan string, 1)
	watcher, err := NewFileWatcher(l.patterns, l.exclude, func(path string, op fsnotify.Op) {
		if !op.Has(fsnotify.Write) && !op.Has(fsnotify.Create) && !op.Has(fsnotify.Rename) {
			return
		}
		select {
		case changes <- path:
		default:
		}
	}, l.logger)
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(l.schemaPath)
	if watcher.recursive() {
		err = watcher.AddDirectory(dir)
	} else {
		err = watcher.Add(dir)
	}
	if err != nil {
		return fmt.Errorf("failed to watch schema directory: %w", err)
	}

	l.rebuild(l.schemaPath)

	watchCtx, stop := context.WithCancel(ctx)
	defer stop()
	errc := make(chan error, 1)
	go func() {
		errc <- watcher.Start(watchCtx)
	}()

	l.logger.Info().Str("dir", dir).Strs("patterns", l.patterns).Msg("watching for changes")

	timer := time.NewTimer(l.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case path := <-changes:
			pending = path
			timer.Reset(l.debounce)
		case <-timer.C:
			l.rebuild(pending)
		}
	}
}

func (l *Loop) rebuild(trigger string) {
	l.logger.Info().Str("trigger", trigger).Msg("building")

	artifacts, err := l.builder.Build(l.schemaPath)
	if err != nil {
		l.logger.Error().Err(err).Msg("build failed")
	} else {
		l.logger.Info().
			Int("written", len(artifacts.Written())).
			Int("units", len(artifacts.Units)).
			Msg("build succeeded")
	}
	l.onBuild(artifacts, err)
}
