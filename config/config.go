package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultWindowTitle  = "Flick Cap"
	defaultAppName      = "flickcap"
	defaultCapCount     = 3
	defaultCapSize      = 64.0
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetWindowWidth() int {
	return c.intSetting("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.intSetting("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

// GetAppName names the per-user data directory records are kept in
func (c *Config) GetAppName() string {
	appName := c.config.GetString("APP_NAME")
	if len(appName) == 0 {
		appName = c.config.GetString("data.appname")
	}
	if len(appName) == 0 {
		appName = defaultAppName
	}

	return appName
}

func (c *Config) GetCapCount() int {
	return c.intSetting("CAP_COUNT", "game.cap_count", defaultCapCount)
}

func (c *Config) GetCapSize() float64 {
	return c.floatSetting("CAP_SIZE", "game.cap_size", defaultCapSize)
}

func (c *Config) GetGlideFactor(fallback float64) float64 {
	return c.floatSetting("GLIDE_FACTOR", "cap.glide_factor", fallback)
}

func (c *Config) GetMinVelocity(fallback float64) float64 {
	return c.floatSetting("MIN_VELOCITY", "cap.min_velocity", fallback)
}

func (c *Config) GetFlickPower(fallback float64) float64 {
	return c.floatSetting("FLICK_POWER", "cap.flick_power", fallback)
}

func (c *Config) GetMaxDragDistance(fallback float64) float64 {
	return c.floatSetting("MAX_DRAG_DISTANCE", "cap.max_drag_distance", fallback)
}

func (c *Config) GetBounceDamping(fallback float64) float64 {
	return c.floatSetting("BOUNCE_DAMPING", "cap.bounce_damping", fallback)
}

func (c *Config) GetArrowDistance(fallback float64) float64 {
	return c.floatSetting("ARROW_DISTANCE", "cap.arrow_distance", fallback)
}

func (c *Config) intSetting(envKey, fileKey string, fallback int) int {
	value := c.config.GetInt(envKey)
	if value == 0 {
		value = c.config.GetInt(fileKey)
	}
	if value == 0 {
		value = fallback
	}

	return value
}

// floatSetting reads a float where zero can be a real value, so presence is
// checked instead of the zero value.
func (c *Config) floatSetting(envKey, fileKey string, fallback float64) float64 {
	if c.config.IsSet(envKey) {
		return c.config.GetFloat64(envKey)
	}
	if c.config.IsSet(fileKey) {
		return c.config.GetFloat64(fileKey)
	}

	return fallback
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
