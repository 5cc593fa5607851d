package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"

	"github.com/golangdaddy/topdown/pkg/physics"
	"github.com/golangdaddy/topdown/pkg/vehicle"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// PhysicsConfig holds world integrator settings.
type PhysicsConfig struct {
	PixelsPerMeter     float64 `json:"pixelsPerMeter" mapstructure:"pixelsPerMeter"`
	VelocityIterations int     `json:"velocityIterations" mapstructure:"velocityIterations"`
	PositionIterations int     `json:"positionIterations" mapstructure:"positionIterations"`
	MaxStep            float64 `json:"maxStep" mapstructure:"maxStep"`
}

// CarConfig holds the tunables a player is expected to change.
type CarConfig struct {
	MaxSpeed       float64 `json:"maxSpeed" mapstructure:"maxSpeed"`
	Drift          float64 `json:"drift" mapstructure:"drift"`
	Acceleration   float64 `json:"acceleration" mapstructure:"acceleration"`
	Drivetrain     string  `json:"drivetrain" mapstructure:"drivetrain"`
	HandbrakeDrift float64 `json:"handbrakeDrift" mapstructure:"handbrakeDrift"`
	Boost          float64 `json:"boost" mapstructure:"boost"`
}

// TelemetryConfig controls the websocket snapshot stream.
type TelemetryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Addr    string `json:"addr" mapstructure:"addr"`
}

// WindowConfig is the logical screen size.
type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// CameraConfig holds the initial view settings.
type CameraConfig struct {
	Zoom float64 `json:"zoom" mapstructure:"zoom"`
}

// Config is the full application configuration.
type Config struct {
	LogLevel  string          `json:"logLevel" mapstructure:"logLevel"`
	Level     string          `json:"level" mapstructure:"level"`
	Physics   PhysicsConfig   `json:"physics" mapstructure:"physics"`
	Car       CarConfig       `json:"car" mapstructure:"car"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
	Window    WindowConfig    `json:"window" mapstructure:"window"`
	Camera    CameraConfig    `json:"camera" mapstructure:"camera"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("level", "assets/track/default.yaml")

	viper.SetDefault("physics.pixelsPerMeter", 50.0)
	viper.SetDefault("physics.velocityIterations", 6)
	viper.SetDefault("physics.positionIterations", 2)
	viper.SetDefault("physics.maxStep", 0.25)

	viper.SetDefault("car.maxSpeed", 35.0)
	viper.SetDefault("car.drift", 0.99)
	viper.SetDefault("car.acceleration", 120.0)
	viper.SetDefault("car.drivetrain", "2wd")
	viper.SetDefault("car.handbrakeDrift", 1.0)
	viper.SetDefault("car.boost", 1.5)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.addr", ":8089")

	viper.SetDefault("window.width", 640)
	viper.SetDefault("window.height", 480)

	viper.SetDefault("camera.zoom", 1.0)
}

// Load sets defaults, reads topdown.yaml from configDir when present and
// applies TOPDOWN_* environment overrides.
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName("topdown")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("topdown")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Car.Drift < 0 || c.Car.Drift > 1:
		return fmt.Errorf("%w: car.drift %v outside [0,1]", ErrInvalid, c.Car.Drift)
	case c.Car.HandbrakeDrift < 0 || c.Car.HandbrakeDrift > 1:
		return fmt.Errorf("%w: car.handbrakeDrift %v outside [0,1]", ErrInvalid, c.Car.HandbrakeDrift)
	case c.Car.MaxSpeed <= 0:
		return fmt.Errorf("%w: car.maxSpeed must be positive", ErrInvalid)
	case c.Car.Acceleration <= 0:
		return fmt.Errorf("%w: car.acceleration must be positive", ErrInvalid)
	case c.Car.Boost <= 0:
		return fmt.Errorf("%w: car.boost must be positive", ErrInvalid)
	case c.Physics.PixelsPerMeter <= 0:
		return fmt.Errorf("%w: physics.pixelsPerMeter must be positive", ErrInvalid)
	case c.Physics.VelocityIterations <= 0 || c.Physics.PositionIterations <= 0:
		return fmt.Errorf("%w: physics iterations must be positive", ErrInvalid)
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("%w: physics.maxStep must be positive", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive", ErrInvalid)
	}
	if _, err := vehicle.ParseDrivetrain(c.Car.Drivetrain); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Drivetrain returns the parsed car.drivetrain.
func (c *Config) Drivetrain() vehicle.Drivetrain {
	d, err := vehicle.ParseDrivetrain(c.Car.Drivetrain)
	if err != nil {
		return vehicle.Drive2WD
	}
	return d
}

// Tuning returns the stock vehicle tuning with the configured car values.
func (c *Config) Tuning() vehicle.Tuning {
	t := vehicle.DefaultTuning()
	t.MaxSpeed = c.Car.MaxSpeed
	t.Drift = mgl64.Clamp(c.Car.Drift, 0, 1)
	t.Acceleration = c.Car.Acceleration
	return t
}

// PhysicsSettings returns the world settings.
func (c *Config) PhysicsSettings() physics.Settings {
	return physics.Settings{
		PixelsPerMeter:     c.Physics.PixelsPerMeter,
		VelocityIterations: c.Physics.VelocityIterations,
		PositionIterations: c.Physics.PositionIterations,
		MaxStep:            c.Physics.MaxStep,
	}
}
