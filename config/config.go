package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akmonengine/hearth"
	"github.com/akmonengine/hearth/ambient"
	"github.com/akmonengine/hearth/camera"
	"github.com/akmonengine/hearth/rig"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Camera    CameraConfig     `yaml:"camera"`
	Walker    rig.WalkerParams `yaml:"walker"`
	Sitter    rig.SitterParams `yaml:"sitter"`
	Child     rig.ChildParams  `yaml:"child"`
	Ambient   ambient.Params   `yaml:"ambient"`
	Scheduler SchedulerConfig  `yaml:"scheduler"`
	Host      HostConfig       `yaml:"host"`
	Audio     AudioConfig      `yaml:"audio"`
	Logging   LoggingConfig    `yaml:"logging"`
}

type CameraConfig struct {
	camera.Params `yaml:",inline"`
	// Vertical field of view, in degrees
	FOV  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"`
	Workers  int           `yaml:"workers"`
}

type HostConfig struct {
	// Terminals only report key presses: a key is released after this much
	// silence. It must exceed the terminal key-repeat delay.
	KeyRelease time.Duration `yaml:"key_release"`
	// Height/width ratio of a terminal cell
	PixelAspect float64 `yaml:"pixel_aspect"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration of the reference room
func Default() *Config {
	return &Config{
		Camera: CameraConfig{
			Params: camera.DefaultParams(),
			FOV:    75,
			Near:   0.1,
			Far:    1000,
		},
		Walker:  rig.DefaultWalkerParams(),
		Sitter:  rig.DefaultSitterParams(),
		Child:   rig.DefaultChildParams(),
		Ambient: ambient.DefaultParams(),
		Scheduler: SchedulerConfig{
			Interval: hearth.DefaultInterval,
			Workers:  hearth.DEFAULT_WORKERS,
		},
		Host: HostConfig{
			// Above the 660ms X11 default repeat delay
			KeyRelease:  700 * time.Millisecond,
			PixelAspect: 2,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the scene cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Scheduler.Interval <= 0:
		return fmt.Errorf("%w: scheduler.interval must be positive", ErrInvalid)
	case c.Scheduler.Workers < 0:
		return fmt.Errorf("%w: scheduler.workers must not be negative", ErrInvalid)
	case c.Camera.Smoothing <= 0 || c.Camera.Smoothing > 1:
		return fmt.Errorf("%w: camera.smoothing must be in (0, 1]", ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: camera.fov must be in (0, 180)", ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: camera planes need 0 < near < far", ErrInvalid)
	case c.Host.KeyRelease <= 0:
		return fmt.Errorf("%w: host.key_release must be positive", ErrInvalid)
	case c.Host.PixelAspect <= 0:
		return fmt.Errorf("%w: host.pixel_aspect must be positive", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", ErrInvalid)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return fmt.Errorf("%w: unknown logging.format %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// Room returns the scene options described by the configuration
func (c *Config) Room() hearth.RoomOptions {
	return hearth.RoomOptions{
		Camera: c.Camera.Params,
		Projection: camera.Projection{
			FOV:    c.Camera.FOV,
			Aspect: 1,
			Near:   c.Camera.Near,
			Far:    c.Camera.Far,
		},
		Walker:  c.Walker,
		Sitter:  c.Sitter,
		Child:   c.Child,
		Ambient: c.Ambient,
		Workers: c.Scheduler.Workers,
	}
}
