package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hearth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDefault_KeyReleaseOutlastsRepeatDelay(t *testing.T) {
	// X11 waits 660ms before the first repeat; a shorter release would drop
	// a held key between the press and its first repeat
	assert.Greater(t, Default().Host.KeyRelease, 660*time.Millisecond)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantErr  error
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides keep other defaults",
			content: `camera:
  smoothing: 0.1
  start: [1, 2, 3]
  fov: 60
walker:
  path_rate: 0.25
scheduler:
  interval: 20ms
  workers: 3
host:
  key_release: 250ms
audio:
  enabled: true
  volume: 0.8
logging:
  level: debug
  format: json
  file: hearth.log
`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0.1, cfg.Camera.Smoothing)
				assert.Equal(t, mgl64.Vec3{1, 2, 3}, cfg.Camera.Start)
				assert.Equal(t, 60.0, cfg.Camera.FOV)
				assert.Equal(t, 5.0, cfg.Camera.LateralGain)
				assert.Equal(t, 0.25, cfg.Walker.PathRate)
				assert.Equal(t, 4.0, cfg.Walker.StrideRate)
				assert.Equal(t, 20*time.Millisecond, cfg.Scheduler.Interval)
				assert.Equal(t, 3, cfg.Scheduler.Workers)
				assert.Equal(t, 250*time.Millisecond, cfg.Host.KeyRelease)
				assert.Equal(t, 2.0, cfg.Host.PixelAspect)
				assert.True(t, cfg.Audio.Enabled)
				assert.Equal(t, 0.8, cfg.Audio.Volume)
				assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", File: "hearth.log"}, cfg.Logging)
			},
		},
		{
			name:    "zero interval",
			content: "scheduler:\n  interval: 0s\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "smoothing above one",
			content: "camera:\n  smoothing: 1.5\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "unknown level",
			content: "logging:\n  level: loud\n",
			wantErr: ErrInvalid,
		},
		{
			name:    "far before near",
			content: "camera:\n  near: 10\n  far: 1\n",
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			cfg, err := Load(path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), path)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(path)

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "camera: [not, a, map\n")

	_, err := Load(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestRoom(t *testing.T) {
	cfg := Default()
	cfg.Camera.FOV = 90
	cfg.Scheduler.Workers = 2
	cfg.Child.HopHeight = 0.5

	opts := cfg.Room()

	assert.Equal(t, 90.0, opts.Projection.FOV)
	assert.Equal(t, 0.1, opts.Projection.Near)
	assert.Equal(t, 2, opts.Workers)
	assert.Equal(t, 0.5, opts.Child.HopHeight)
	assert.Equal(t, cfg.Camera.Params, opts.Camera)
}
