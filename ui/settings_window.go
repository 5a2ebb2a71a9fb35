package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
)

// showSettings opens the settings dialog. The widgets hold their own copies
// of the fields; the configuration record is only updated, and persisted,
// when the dialog is confirmed.
func (mw *MainWindow) showSettings() {
	xqemuEntry := widget.NewEntry()
	xqemuEntry.SetText(mw.config.XqemuPath)

	mcpxEntry := widget.NewEntry()
	mcpxEntry.SetText(mw.config.MCPXPath)

	flashEntry := widget.NewEntry()
	flashEntry.SetText(mw.config.FlashPath)

	hddEntry := widget.NewEntry()
	hddEntry.SetText(mw.config.HDDPath)

	dvdEntry := widget.NewEntry()
	dvdEntry.SetText(mw.config.DVDPath)

	hddLockedCheck := widget.NewCheck("", nil)
	hddLockedCheck.SetChecked(mw.config.HDDLocked)

	dvdPresentCheck := widget.NewCheck("", nil)
	dvdPresentCheck.SetChecked(mw.config.DVDPresent)

	shortAnimCheck := widget.NewCheck("", nil)
	shortAnimCheck.SetChecked(mw.config.ShortBootAnimation)

	form := dialog.NewForm("Settings", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("xqemu Executable", mw.newPathRow("Select xqemu Executable", xqemuEntry)),
			widget.NewFormItem("MCPX Boot ROM", mw.newPathRow("Select MCPX Boot ROM", mcpxEntry)),
			widget.NewFormItem("Flash BIOS", mw.newPathRow("Select Flash BIOS", flashEntry)),
			widget.NewFormItem("Hard Disk Image", mw.newPathRow("Select Hard Disk Image", hddEntry)),
			widget.NewFormItem("Lock Hard Disk", hddLockedCheck),
			widget.NewFormItem("Disc Present", dvdPresentCheck),
			widget.NewFormItem("Disc Image", mw.newPathRow("Select Disc Image", dvdEntry)),
			widget.NewFormItem("Short Boot Animation", shortAnimCheck),
		},
		func(confirm bool) {
			if !confirm {
				return
			}

			mw.config.XqemuPath = xqemuEntry.Text
			mw.config.MCPXPath = mcpxEntry.Text
			mw.config.FlashPath = flashEntry.Text
			mw.config.HDDPath = hddEntry.Text
			mw.config.HDDLocked = hddLockedCheck.Checked
			mw.config.DVDPresent = dvdPresentCheck.Checked
			mw.config.DVDPath = dvdEntry.Text
			mw.config.ShortBootAnimation = shortAnimCheck.Checked

			if err := mw.storage.SaveConfig(mw.config); err != nil {
				dialog.ShowError(err, mw.window)
			}
		},
		mw.window)

	form.Resize(fyne.NewSize(560, 420))
	form.Show()
}

// newPathRow builds an entry with an attached Browse button that fills the
// entry from a file picker.
func (mw *MainWindow) newPathRow(title string, entry *widget.Entry) fyne.CanvasObject {
	browseBtn := widget.NewButton("Browse", func() {
		mw.choosePath(title, entry.Text, entry.SetText)
	})

	return container.NewBorder(nil, nil, nil, browseBtn, entry)
}

// choosePath opens a file picker and passes the selected path to set.
// Prefers the native zenity dialog, falling back to the Fyne file dialog
// when zenity is not available.
func (mw *MainWindow) choosePath(title, startPath string, set func(string)) {
	if zenity.IsAvailable() {
		filename, err := zenity.SelectFile(
			zenity.Title(title),
			zenity.Filename(startPath),
		)
		if err != nil {
			if err == zenity.ErrCanceled {
				return
			}
			// On error, fall back to the Fyne dialog
			mw.openFyneFileDialog(startPath, set)
			return
		}

		if filename != "" {
			set(filename)
		}
		return
	}

	mw.openFyneFileDialog(startPath, set)
}

// openFyneFileDialog is the fallback file picker using the Fyne file dialog
func (mw *MainWindow) openFyneFileDialog(startPath string, set func(string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if reader == nil {
			return // user cancelled
		}
		defer reader.Close()
		set(reader.URI().Path())
	}, mw.window)

	// Start browsing from the directory of the current value
	if startPath != "" {
		dirURI := fynestorage.NewFileURI(filepath.Dir(startPath))
		if listable, err := fynestorage.ListerForURI(dirURI); err == nil {
			fileDialog.SetLocation(listable)
		}
	}

	fileDialog.Show()
}
