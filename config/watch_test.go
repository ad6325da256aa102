package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsValidChanges(t *testing.T) {
	path := writeConfig(t, "walker:\n  path_rate: 0.5\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	applied := make(chan *Config, 8)
	done := make(chan struct{})
	go func() {
		w.Run(ctx, func(cfg *Config) { applied <- cfg })
		close(done)
	}()

	// Invalid versions are skipped
	require.NoError(t, os.WriteFile(path, []byte("camera:\n  smoothing: 3\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("walker:\n  path_rate: 0.75\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-applied:
			assert.Equal(t, 0.05, cfg.Camera.Smoothing)
			if cfg.Walker.PathRate == 0.75 {
				cancel()
				<-done
				return
			}
		case <-deadline:
			t.Fatal("no reload after the file changed")
		}
	}
}

func TestWatcher_CoalescesTruncateAndWrite(t *testing.T) {
	path := writeConfig(t, "walker:\n  radius: 4\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var radii []float64
	done := make(chan struct{})
	go func() {
		w.Run(ctx, func(cfg *Config) { radii = append(radii, cfg.Walker.Radius) })
		close(done)
	}()

	// An empty file would load as the defaults
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	require.NoError(t, os.WriteFile(path, []byte("walker:\n  radius: 6\n"), 0o644))
	<-done

	assert.Equal(t, []float64{6}, radii)
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	path := writeConfig(t, "walker:\n  path_rate: 0.5\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	applied := 0
	go func() {
		sibling := filepath.Join(filepath.Dir(path), "other.yaml")
		os.WriteFile(sibling, []byte("walker:\n  path_rate: 1\n"), 0o644)
	}()
	w.Run(ctx, func(*Config) { applied++ })

	assert.Zero(t, applied)
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "hearth.yaml"))

	assert.Error(t, err)
}
