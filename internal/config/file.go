package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/model"
)

// File is the optional TOML configuration read by the CLI.
//
//	[merge]
//	endpoint = "http://localhost:4000/api/videos/merge"
//	resolution = "1280x720"
//	output_dir = "${HOME}/Videos"
//
//	[log]
//	level = "info"
//	format = "console"
type File struct {
	Merge MergeConfig `toml:"merge"`
	Log   LogConfig   `toml:"log"`
}

type MergeConfig struct {
	Endpoint   string `toml:"endpoint"`
	Resolution string `toml:"resolution"`
	OutputDir  string `toml:"output_dir"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Defaults returns the compiled-in configuration
func Defaults() *File {
	return &File{
		Merge: MergeConfig{
			Endpoint:   merge.DefaultEndpoint,
			Resolution: model.DefaultCatalog().Default(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "video-merge", "config.toml")
}

// LoadFile reads path and fills unset values from Defaults.
// An empty path tries DefaultPath and falls back to defaults when it is absent.
func LoadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg File
	if _, err := toml.Decode(substituteEnvVars(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *File) applyDefaults() {
	d := Defaults()
	if f.Merge.Endpoint == "" {
		f.Merge.Endpoint = d.Merge.Endpoint
	}
	if f.Merge.Resolution == "" {
		f.Merge.Resolution = d.Merge.Resolution
	}
	if f.Log.Level == "" {
		f.Log.Level = d.Log.Level
	}
	if f.Log.Format == "" {
		f.Log.Format = d.Log.Format
	}
}

// Validate checks that the resolution names a known preset
func (f *File) Validate() error {
	opt, ok := model.DefaultCatalog().Lookup(f.Merge.Resolution)
	if !ok {
		return fmt.Errorf("merge.resolution: unknown preset %q", f.Merge.Resolution)
	}
	f.Merge.Resolution = opt.Resolution
	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1]
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}
