package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/jrnl/pkg/dates"
)

// DefaultFirstWeekday is Sunday in the 0=Monday..6=Sunday numbering.
const DefaultFirstWeekday = 6

const defaultConfig = `data_dir: %s
# file extension for journal files (e.g. 'md' for markdown.
# don't include the '.' character. the default is no extension.
#file_ext: ""
# options to be used when editing the file for the current day
# (e.g., '"+normal G$" +startinsert' to instruct vim/neovim to
# move to the last line and go into INSERT mode on open)
#today_options: ""
# file with which to populate new journal entries for the current
# day. e.g., this file may be generated by a daily cronjob to
# pre-populate a new entry with the day's events or other info.
#today_template: ""
# first day of week (0 = Mon, 6 = Sun)
first_weekday: 6
# show calendars in week, month and year list views
show_calendar_week: true
show_calendar_month: true
show_calendar_year: true
# disable all color output
disable_colors: false
`

// Config carries everything the journal needs from its config file. The
// core treats these as validated inputs once Load has run.
type Config struct {
	Path string // config file location, kept for the `config` command

	DataDir       string
	FileExt       string
	TodayTemplate string
	TodayOptions  string
	FirstWeekday  int

	ShowCalendarWeek  bool
	ShowCalendarMonth bool
	ShowCalendarYear  bool
	DisableColors     bool
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.FirstWeekday, validation.Min(0), validation.Max(6)),
	)
}

// EntryFile returns the filename for a date, extension-aware.
func (c *Config) EntryFile(date time.Time) string {
	name := dates.Format(date)
	if c.FileExt != "" {
		return name + "." + c.FileExt
	}
	return name
}

// EntryPath returns the absolute path for a date's entry file.
func (c *Config) EntryPath(date time.Time) string {
	return filepath.Join(c.DataDir, c.EntryFile(date))
}

// DefaultConfigPath resolves the config file location, honoring
// XDG_CONFIG_HOME before falling back to ~/.config/jrnl/config.yaml.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jrnl", "config.yaml"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "jrnl", "config.yaml"), nil
}

// DefaultDataDir resolves the data directory default, honoring
// XDG_DATA_HOME before falling back to ~/.local/share/jrnl.
func DefaultDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "jrnl"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home: %w", err)
	}
	return filepath.Join(home, ".local", "share", "jrnl"), nil
}

// EnsureConfigFile resolves the config file location (empty means the
// default) and writes the commented defaults if no file exists there yet.
func EnsureConfigFile(path string) (string, error) {
	var err error
	if path == "" {
		if path, err = DefaultConfigPath(); err != nil {
			return "", err
		}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		dataDir, err := DefaultDataDir()
		if err != nil {
			return "", err
		}
		if err := writeDefaultConfig(path, dataDir); err != nil {
			return "", err
		}
	}
	return path, nil
}

// LoadConfig reads the config file at path, creating it with commented
// defaults first if it does not exist. An empty path means the default
// location.
func LoadConfig(path string) (*Config, error) {
	var err error
	if path == "" {
		if path, err = DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	dataDir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefaultConfig(path, dataDir); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("JRNL")
	v.AutomaticEnv()
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("show_calendar_week", true)
	v.SetDefault("show_calendar_month", true)
	v.SetDefault("show_calendar_year", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := &Config{
		Path:              path,
		FileExt:           strings.TrimPrefix(v.GetString("file_ext"), "."),
		TodayOptions:      v.GetString("today_options"),
		FirstWeekday:      firstWeekday(v.GetString("first_weekday")),
		ShowCalendarWeek:  v.GetBool("show_calendar_week"),
		ShowCalendarMonth: v.GetBool("show_calendar_month"),
		ShowCalendarYear:  v.GetBool("show_calendar_year"),
		DisableColors:     v.GetBool("disable_colors"),
	}
	if cfg.DataDir, err = expandPath(v.GetString("data_dir")); err != nil {
		return nil, err
	}
	if tmpl := v.GetString("today_template"); tmpl != "" {
		if cfg.TodayTemplate, err = expandPath(tmpl); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.ensureDataDir(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// firstWeekday parses the config value, falling back to the default for
// anything malformed or out of range. This is the loader's call, not the
// core's: downstream code always sees a valid weekday.
func firstWeekday(raw string) int {
	if raw == "" {
		return DefaultFirstWeekday
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 || n > 6 {
		return DefaultFirstWeekday
	}
	return n
}

func expandPath(p string) (string, error) {
	p = os.ExpandEnv(p)
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("config: expand %s: %w", p, err)
	}
	return expanded, nil
}

func writeDefaultConfig(path, dataDir string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create %s: %w", filepath.Dir(path), err)
	}
	body := fmt.Sprintf(defaultConfig, dataDir)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

func (c *Config) ensureDataDir() error {
	info, err := os.Stat(c.DataDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
			return fmt.Errorf("config: %s doesn't exist and can't be created: %w", c.DataDir, err)
		}
	case err != nil:
		return fmt.Errorf("config: stat %s: %w", c.DataDir, err)
	case !info.IsDir():
		return fmt.Errorf("config: %s is not a directory", c.DataDir)
	}
	return nil
}
