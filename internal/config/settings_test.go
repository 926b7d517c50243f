package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/video-merger/internal/merge"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	if got := settings.GetDownloadDirectory(); got != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, got)
	}
}

func TestEndpoint(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetEndpoint(); got != merge.DefaultEndpoint {
		t.Errorf("Expected default endpoint %s, got %s", merge.DefaultEndpoint, got)
	}

	settings.SetEndpoint("http://merge.internal:8080/api/videos/merge")
	if got := settings.GetEndpoint(); got != "http://merge.internal:8080/api/videos/merge" {
		t.Errorf("Unexpected endpoint %s", got)
	}

	settings.SetEndpoint("")
	if got := settings.GetEndpoint(); got != merge.DefaultEndpoint {
		t.Errorf("Empty endpoint should restore default, got %s", got)
	}
}

func TestDefaultResolution(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDefaultResolution(); got != "640x480" {
		t.Errorf("Expected default resolution 640x480, got %s", got)
	}

	settings.SetDefaultResolution("Full HD")
	if got := settings.GetDefaultResolution(); got != "1920x1080" {
		t.Errorf("Expected 1920x1080, got %s", got)
	}

	settings.SetDefaultResolution("8k")
	if got := settings.GetDefaultResolution(); got != "1920x1080" {
		t.Errorf("Unknown preset must be ignored, got %s", got)
	}
}

func TestGetResolutionOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetResolutionOptions()
	if len(options) != 4 {
		t.Fatalf("Expected 4 resolution options, got %d", len(options))
	}
	if options[2].Name != "Full HD" {
		t.Errorf("Expected third option to be Full HD, got %s", options[2].Name)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Unexpected auto-reveal default")
	}

	settings.SetAutoRevealOnComplete(true)
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be enabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
