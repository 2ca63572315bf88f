package main

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/alcohol-calculator/internal/config"
	"github.com/ytget/alcohol-calculator/internal/logging"
	"github.com/ytget/alcohol-calculator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.alcohol-calculator"
	AppName = "Alcohol calculator"
)

func main() {
	opts, err := config.LoadOptions()
	logger := logging.Setup(logging.ParseLevel(opts.LogLevel))
	if err != nil {
		logger.Warn("using default options", "error", err)
	}

	logger.Info("starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.ThemeFor(settings.GetCompactTheme()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(opts.WindowWidth, opts.WindowHeight))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, settings, logger)
	if opts.Language != "" {
		root.UseLanguage(opts.Language)
	}

	// Show and run
	myWindow.ShowAndRun()
	slog.Info("window closed")
}
