package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/model"
	"github.com/ytget/video-merger/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyEndpoint           = "merge_endpoint"
	KeyDefaultResolution  = "default_resolution"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	FallbackDownloadDir       = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app     fyne.App
	catalog model.Catalog
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, catalog: model.DefaultCatalog()}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetEndpoint returns the merge endpoint URL
func (s *Settings) GetEndpoint() string {
	endpoint := s.app.Preferences().String(KeyEndpoint)
	if endpoint == "" {
		s.SetEndpoint(merge.DefaultEndpoint)
		return merge.DefaultEndpoint
	}
	return endpoint
}

// SetEndpoint sets the merge endpoint URL; "" restores the default
func (s *Settings) SetEndpoint(endpoint string) {
	if endpoint == "" {
		endpoint = merge.DefaultEndpoint
	}
	s.app.Preferences().SetString(KeyEndpoint, endpoint)
}

// GetDefaultResolution returns the resolution preselected in new forms
func (s *Settings) GetDefaultResolution() string {
	res := s.app.Preferences().String(KeyDefaultResolution)
	if _, ok := s.catalog.Lookup(res); !ok {
		res = s.catalog.Default()
		s.app.Preferences().SetString(KeyDefaultResolution, res)
	}
	return res
}

// SetDefaultResolution stores a preset; values outside the catalog are ignored
func (s *Settings) SetDefaultResolution(resolution string) {
	opt, ok := s.catalog.Lookup(resolution)
	if !ok {
		return
	}
	s.app.Preferences().SetString(KeyDefaultResolution, opt.Resolution)
}

// GetResolutionOptions returns available resolution presets
func (s *Settings) GetResolutionOptions() []model.ResolutionOption {
	return s.catalog.Options()
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the merged file once saved
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the merged file once saved
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
