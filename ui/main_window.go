package ui

import (
	"time"
	"xqemulauncher/emulator"
	"xqemulauncher/models"
	"xqemulauncher/storage"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainWindow represents the main application window
type MainWindow struct {
	app      fyne.App
	window   fyne.Window
	emulator *emulator.Manager
	storage  *storage.Manager
	config   *models.Config

	runButton   *widget.Button
	statusLabel *StatusLabel
}

// NewMainWindow creates a new main window
func NewMainWindow() *MainWindow {
	myApp := app.New()
	myApp.SetIcon(theme.ComputerIcon())

	window := myApp.NewWindow("xqemu Launcher")
	window.Resize(fyne.NewSize(380, 160))

	mw := &MainWindow{
		app:      myApp,
		window:   window,
		emulator: emulator.NewManager(),
		storage:  storage.NewManager(),
	}

	mw.loadConfig()
	mw.setupUI()
	mw.startStatusTimer()

	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// loadConfig loads the configuration from storage
func (mw *MainWindow) loadConfig() {
	var err error

	mw.config, err = mw.storage.LoadConfig()
	if err != nil {
		dialog.ShowError(err, mw.window)
		mw.config = models.DefaultConfig()
	}
}

// setupUI sets up the user interface
func (mw *MainWindow) setupUI() {
	mw.statusLabel = NewStatusLabel()
	mw.runButton = widget.NewButton("Start", mw.onRunButtonClicked)

	mw.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Settings...", mw.onSettingsClicked),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Exit", mw.onExitClicked),
		),
	))

	content := container.NewVBox(
		mw.statusLabel,
		mw.runButton,
	)
	mw.window.SetContent(container.NewPadded(content))

	// Closing the window is treated like Exit: stop any running instance
	// so no orphan child is left behind.
	mw.window.SetCloseIntercept(mw.onExitClicked)
}

// onRunButtonClicked toggles the emulator between running and stopped
func (mw *MainWindow) onRunButtonClicked() {
	if !mw.emulator.IsRunning() {
		if err := mw.emulator.Start(mw.config); err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
	} else {
		mw.emulator.Stop()
	}

	mw.refreshRunState()
}

// onSettingsClicked opens the settings dialog
func (mw *MainWindow) onSettingsClicked() {
	mw.showSettings()
}

// onExitClicked stops any running instance and quits the application
func (mw *MainWindow) onExitClicked() {
	mw.emulator.Stop()
	mw.app.Quit()
}

// refreshRunState updates the toggle button and status label from the
// emulator state.
func (mw *MainWindow) refreshRunState() {
	running := mw.emulator.IsRunning()

	mw.statusLabel.SetRunning(running)
	if running {
		mw.runButton.SetText("Stop")
	} else {
		mw.runButton.SetText("Start")
	}
}

// startStatusTimer periodically refreshes the run state so the window also
// reflects the emulator exiting on its own.
func (mw *MainWindow) startStatusTimer() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for range ticker.C {
			mw.refreshRunState()
		}
	}()
}
