package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies store location and display policy settings.
type Config interface {
	BasePath() string
	WeekStart() time.Weekday
	MonthCap() int
}

// LoadConfig reads .almanac config (yaml implicit) from the working
// directory or ALMANAC_CONFIG_PATH, with ALMANAC_* env overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.almanac.db")
	viper.SetDefault("weekstart", "sunday")
	viper.SetDefault("monthcap", 0) // 0 means the view default
	viper.SetConfigName(".almanac")
	viper.SetEnvPrefix("ALMANAC")
	viper.AutomaticEnv()

	if override := os.Getenv("ALMANAC_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:         path,
		WeekStartDay: parseWeekday(viper.GetString("weekstart")),
		Cap:          viper.GetInt("monthcap"),
	}, nil
}

type fileConfig struct {
	Path         string       `json:"path"`
	WeekStartDay time.Weekday `json:"weekstart"`
	Cap          int          `json:"monthcap"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) WeekStart() time.Weekday {
	return f.WeekStartDay
}

func (f *fileConfig) MonthCap() int {
	return f.Cap
}

func parseWeekday(raw string) time.Weekday {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "monday":
		return time.Monday
	case "saturday":
		return time.Saturday
	default:
		return time.Sunday
	}
}
