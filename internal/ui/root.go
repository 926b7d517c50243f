package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-merger/internal/config"
	"github.com/ytget/video-merger/internal/form"
	"github.com/ytget/video-merger/internal/model"
	"github.com/ytget/video-merger/internal/platform"
)

// slot identifies one of the two video pickers
type slot int

const (
	slotA slot = iota
	slotB
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	form         *form.Form
	settings     *config.Settings
	localization *Localization

	titleLabel      *widget.Label
	videoATitle     *widget.Label
	videoBTitle     *widget.Label
	resolutionTitle *widget.Label

	videoALabel      *widget.Label
	videoBLabel      *widget.Label
	pickABtn         *widget.Button
	pickBBtn         *widget.Button
	clearABtn        *widget.Button
	clearBBtn        *widget.Button
	resolutionSelect *widget.Select

	errorLabel *widget.Label
	mergeBtn   *widget.Button
	spinner    *widget.ProgressBarInfinite
	waitLabel  *widget.Label

	resultLabel     *widget.Label
	revealBtn       *widget.Button
	openBtn         *widget.Button
	resultContainer *fyne.Container

	// last rendered state, read on the UI thread only
	state form.State
	// submission ID that was already auto-revealed
	lastRevealed string
	// set while render updates the select, so OnChanged does not echo back
	syncingSelect bool

	revealFile func(string) error
	openFile   func(string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, mergeForm *form.Form) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		form:         mergeForm,
		settings:     settings,
		localization: localization,
		revealFile:   platform.OpenFileInManager,
		openFile:     platform.OpenFileWithDefaultApp,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	mergeForm.SetUpdateCallback(ui.onStateUpdate)
	ui.render(mergeForm.State())

	log.Debug().Msg("merge form UI initialized")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	ui.titleLabel.SizeName = theme.SizeNameHeadingText

	ui.videoATitle = widget.NewLabel("")
	ui.videoBTitle = widget.NewLabel("")
	ui.resolutionTitle = widget.NewLabel("")

	ui.videoALabel = widget.NewLabel("")
	ui.videoALabel.Truncation = fyne.TextTruncateEllipsis
	ui.videoBLabel = widget.NewLabel("")
	ui.videoBLabel.Truncation = fyne.TextTruncateEllipsis

	ui.pickABtn = widget.NewButton("", func() { ui.onPickVideo(slotA) })
	ui.pickBBtn = widget.NewButton("", func() { ui.onPickVideo(slotB) })
	ui.clearABtn = widget.NewButton(IconClose, ui.form.ClearVideoA)
	ui.clearABtn.Importance = widget.LowImportance
	ui.clearBBtn = widget.NewButton(IconClose, ui.form.ClearVideoB)
	ui.clearBBtn.Importance = widget.LowImportance

	ui.resolutionSelect = widget.NewSelect(ui.form.Catalog().Labels(), ui.onResolutionChanged)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Hide()

	ui.mergeBtn = widget.NewButton("", ui.onMergeClick)
	ui.mergeBtn.Importance = widget.HighImportance
	if fyne.CurrentDevice().IsMobile() {
		ui.mergeBtn.Resize(fyne.NewSize(MinTouchTargetSize, MobileButtonHeight))
	}

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.waitLabel = widget.NewLabel("")
	ui.waitLabel.Alignment = fyne.TextAlignCenter
	ui.waitLabel.Hide()

	ui.resultLabel = widget.NewLabel("")
	ui.resultLabel.Wrapping = fyne.TextWrapBreak
	ui.resultLabel.Importance = widget.SuccessImportance
	ui.revealBtn = widget.NewButton("", ui.onRevealResult)
	ui.openBtn = widget.NewButton("", ui.onOpenResult)
	ui.resultContainer = container.NewVBox(ui.resultLabel, container.NewHBox(ui.revealBtn, ui.openBtn))
	ui.resultContainer.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var header fyne.CanvasObject = container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.titleLabel)
	}

	formBox := container.NewVBox(
		header,
		widget.NewSeparator(),
		ui.videoATitle,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.pickABtn, ui.clearABtn), ui.videoALabel),
		ui.videoBTitle,
		container.NewBorder(nil, nil, nil, container.NewHBox(ui.pickBBtn, ui.clearBBtn), ui.videoBLabel),
		ui.resolutionTitle,
		ui.resolutionSelect,
		ui.errorLabel,
		ui.mergeBtn,
		ui.spinner,
		ui.waitLabel,
		ui.resultContainer,
	)

	ui.refreshUITexts()
	ui.window.SetContent(container.NewPadded(container.NewCenter(container.NewGridWrap(fyne.NewSize(FormMinWidth, formBox.MinSize().Height), formBox))))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all static texts with the current language and
// re-renders the dynamic ones from the last state
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.titleLabel.SetText(l.GetText(KeyAppTitle))
	ui.videoATitle.SetText(IconVideo + " " + l.GetText(KeyVideoA))
	ui.videoBTitle.SetText(IconVideo + " " + l.GetText(KeyVideoB))
	ui.resolutionTitle.SetText(l.GetText(KeyResolution))
	ui.pickABtn.SetText(IconFolder + " " + l.GetText(KeyChooseFile))
	ui.pickBBtn.SetText(IconFolder + " " + l.GetText(KeyChooseFile))
	ui.waitLabel.SetText(l.GetText(KeyPleaseWait))
	ui.revealBtn.SetText(IconFolder + " " + l.GetText(KeyReveal))
	ui.openBtn.SetText(IconFile + " " + l.GetText(KeyOpen))
	ui.render(ui.state)
}

// onStateUpdate is the form callback; it may run on any goroutine
func (ui *RootUI) onStateUpdate(s form.State) {
	fyne.Do(func() {
		ui.render(s)
	})
}

// render makes every widget reflect s. Must run on the UI thread.
func (ui *RootUI) render(s form.State) {
	ui.state = s
	l := ui.localization

	ui.videoALabel.SetText(ui.describeSelection(s.VideoA))
	ui.videoBLabel.SetText(ui.describeSelection(s.VideoB))
	setEnabled(ui.clearABtn, s.VideoA != nil && !s.Loading)
	setEnabled(ui.clearBBtn, s.VideoB != nil && !s.Loading)

	ui.syncingSelect = true
	if opt, ok := ui.form.Catalog().Lookup(s.Resolution); ok && s.Resolution == opt.Resolution {
		ui.resolutionSelect.SetSelected(opt.Label())
	} else {
		ui.resolutionSelect.ClearSelected()
	}
	ui.syncingSelect = false

	if s.Error != "" {
		ui.errorLabel.SetText(l.Message(s.Error))
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}

	if s.Loading {
		ui.mergeBtn.SetText(l.GetText(KeyProcessing))
		ui.mergeBtn.Disable()
		ui.spinner.Show()
		ui.spinner.Start()
		ui.waitLabel.Show()
	} else {
		ui.mergeBtn.SetText(l.GetText(KeyMergeVideos))
		ui.mergeBtn.Enable()
		ui.spinner.Stop()
		ui.spinner.Hide()
		ui.waitLabel.Hide()
	}

	ui.renderResult(s.Last)
}

// renderResult shows where the last merged file went
func (ui *RootUI) renderResult(last *model.Submission) {
	if last == nil || last.Status != model.SubmissionSucceeded || last.OutputPath == "" {
		ui.resultContainer.Hide()
		return
	}

	ui.resultLabel.SetText(fmt.Sprintf(PathLabelFormat, ui.localization.GetText(KeySavedTo), last.OutputPath))
	ui.resultContainer.Show()

	if ui.lastRevealed != last.ID && ui.settings.GetAutoRevealOnComplete() {
		ui.lastRevealed = last.ID
		go ui.autoReveal(ui.revealFile, last.OutputPath)
	}
}

// autoReveal runs off the UI thread; some file managers block until closed
func (ui *RootUI) autoReveal(reveal func(string) error, path string) {
	err := reveal(path)
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("path", path).Msg("auto-reveal failed")
	fyne.Do(func() {
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	})
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func (ui *RootUI) describeSelection(sel *model.VideoSelection) string {
	if sel == nil {
		return ui.localization.GetText(KeyNoFileSelected)
	}
	if size := sel.GetSizeString(); size != "" {
		return fmt.Sprintf(FileLabelFormat, sel.GetDisplayName(), size)
	}
	return sel.GetDisplayName()
}

// onPickVideo opens a file dialog for one slot
func (ui *RootUI) onPickVideo(target slot) {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if rc == nil {
			return // canceled; keep the previous selection
		}

		sel, err := selectionFromURI(rc)
		if err != nil {
			log.Error().Err(err).Msg("failed to use picked video")
			dialog.ShowError(err, ui.window)
			return
		}
		ui.applyPick(target, sel)
	}, ui.window)

	fd.SetFilter(storage.NewMimeTypeFileFilter(VideoMimeTypes))
	if dir, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetDownloadDirectory())); err == nil {
		fd.SetLocation(dir)
	}
	fd.Show()
}

// applyPick stores a picked file in the form
func (ui *RootUI) applyPick(target slot, sel *model.VideoSelection) {
	log.Debug().Str("file", sel.GetDisplayName()).Int("slot", int(target)).Msg("video selected")
	if target == slotA {
		ui.form.SetVideoA(sel)
	} else {
		ui.form.SetVideoB(sel)
	}
}

// selectionFromURI turns a picker result into a re-openable selection.
// The picker's own reader is closed; the request opens a fresh one.
func selectionFromURI(rc fyne.URIReadCloser) (*model.VideoSelection, error) {
	uri := rc.URI()
	_ = rc.Close()

	if uri.Scheme() == "file" {
		return model.SelectionFromPath(uri.Path())
	}
	return model.NewSelection(uri.Name(), -1, func() (io.ReadCloser, error) {
		return storage.Reader(uri)
	}), nil
}

// onResolutionChanged handles the resolution picker
func (ui *RootUI) onResolutionChanged(label string) {
	if ui.syncingSelect {
		return
	}
	opt, ok := ui.form.Catalog().ByLabel(label)
	if !ok {
		return
	}
	ui.form.SetResolution(opt.Resolution)
}

// onMergeClick handles the merge button. The request runs off the UI thread.
func (ui *RootUI) onMergeClick() {
	ui.mergeBtn.Disable()
	go ui.submit()
}

func (ui *RootUI) submit() {
	err := ui.form.Submit(context.Background())
	if errors.Is(err, form.ErrInFlight) {
		log.Debug().Msg("merge already running")
	}
}

// onRevealResult shows the merged file in the system file manager
func (ui *RootUI) onRevealResult() {
	ui.withResultPath(ui.revealFile)
}

// onOpenResult opens the merged file with the default application
func (ui *RootUI) onOpenResult() {
	ui.withResultPath(ui.openFile)
}

func (ui *RootUI) withResultPath(action func(string) error) {
	last := ui.state.Last
	if last == nil || last.OutputPath == "" {
		return
	}
	if err := action(last.OutputPath); err != nil {
		log.Error().Err(err).Str("path", last.OutputPath).Msg("failed to open merged file")
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err), ui.window)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}
