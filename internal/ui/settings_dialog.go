package ui

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-merger/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry *widget.Entry
	endpointEntry    *widget.Entry
	resolutionSelect *widget.Select
	languageSelect   *widget.Select
	autoRevealCheck  *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the user confirms and the values are stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.downloadDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder("http://localhost:4000/api/videos/merge")

	var resolutionLabels []string
	for _, opt := range sd.settings.GetResolutionOptions() {
		resolutionLabels = append(resolutionLabels, opt.Label())
	}
	sd.resolutionSelect = widget.NewSelect(resolutionLabels, nil)

	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.autoRevealCheck = widget.NewCheck(l.GetText(KeyAutoReveal), nil)

	endpointNote := widget.NewLabel(l.GetText(KeyEndpointRestartNote))
	endpointNote.Importance = widget.LowImportance
	endpointNote.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(l.GetText(KeyEndpoint)),
		sd.endpointEntry,
		endpointNote,

		widget.NewLabel(l.GetText(KeyDefaultResolution)),
		sd.resolutionSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.endpointEntry.SetText(sd.settings.GetEndpoint())

	current := sd.settings.GetDefaultResolution()
	for _, opt := range sd.settings.GetResolutionOptions() {
		if opt.Resolution == current {
			sd.resolutionSelect.SetSelected(opt.Label())
		}
	}

	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	endpoint := strings.TrimSpace(sd.endpointEntry.Text)
	if err := validateEndpoint(endpoint); err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("settings not saved")
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidEndpoint), err), sd.window)
		return
	}

	if dir := strings.TrimSpace(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	sd.settings.SetEndpoint(endpoint)

	for _, opt := range sd.settings.GetResolutionOptions() {
		if opt.Label() == sd.resolutionSelect.Selected {
			sd.settings.SetDefaultResolution(opt.Resolution)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	log.Info().
		Str("download_dir", sd.settings.GetDownloadDirectory()).
		Str("endpoint", sd.settings.GetEndpoint()).
		Str("language", sd.settings.GetLanguage()).
		Msg("settings saved")

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateEndpoint accepts an absolute http(s) URL with a host, or "" for the default
func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", endpoint)
	}
	return nil
}
