package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/video-merger/internal/config"
	"github.com/ytget/video-merger/internal/form"
	"github.com/ytget/video-merger/internal/logs"
	"github.com/ytget/video-merger/internal/merge"
	"github.com/ytget/video-merger/internal/platform"
	"github.com/ytget/video-merger/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-merger"
	AppName = "Video Merger"

	WindowWidth  = 560
	WindowHeight = 520
)

func main() {
	logger := logs.Setup(logs.DefaultConfig("desktop"))
	logger.Info().Str("version", version).Msg("video merger starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf(ui.WindowTitleFormat, AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn().Err(err).Str("dir", downloadsDir).Msg("failed to ensure downloads dir")
	}

	client := merge.NewClient(settings.GetEndpoint())
	saver := platform.NewDirSaver(downloadsDir)
	mergeForm := form.New(client, saver, form.Options{
		Resolution: settings.GetDefaultResolution(),
		Logger:     &logger,
	})

	ui.NewRootUI(myWindow, settings, mergeForm)

	myWindow.ShowAndRun()
}
