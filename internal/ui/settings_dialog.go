package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dlshell/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(restart bool)

	// UI components
	programEntry     *widget.Entry
	helpFlagEntry    *widget.Entry
	dataDirEntry     *widget.Entry
	workDirEntry     *widget.Entry
	helpTimeoutEntry *widget.Entry
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved reports whether a
// program-related setting changed and needs a restart.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func(restart bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: loc,
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
	loc := sd.localization

	sd.programEntry = widget.NewEntry()
	sd.programEntry.SetPlaceHolder(config.DefaultProgram)

	sd.helpFlagEntry = widget.NewEntry()
	sd.helpFlagEntry.SetPlaceHolder(config.DefaultHelpFlag)

	sd.dataDirEntry = widget.NewEntry()
	sd.workDirEntry = widget.NewEntry()

	sd.helpTimeoutEntry = widget.NewEntry()
	sd.helpTimeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinHelpTimeout) + "-" + strconv.Itoa(config.MaxHelpTimeout))

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyProgram)+":"),
		sd.programEntry,

		widget.NewLabel(loc.GetText(KeyHelpFlag)+":"),
		sd.helpFlagEntry,

		widget.NewLabel(loc.GetText(KeyHelpTimeout)+":"),
		sd.helpTimeoutEntry,

		widget.NewLabel(loc.GetText(KeyDataDirectory)+":"),
		sd.browseRow(sd.dataDirEntry),

		widget.NewLabel(loc.GetText(KeyWorkingDirectory)+":"),
		sd.browseRow(sd.workDirEntry),

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// browseRow puts a folder picker next to entry
func (sd *SettingsDialog) browseRow(entry *widget.Entry) fyne.CanvasObject {
	browse := widget.NewButton(sd.localization.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, sd.window)
	})
	return container.NewBorder(nil, nil, nil, browse, entry)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.programEntry.SetText(sd.settings.GetProgram())
	sd.helpFlagEntry.SetText(sd.settings.GetHelpFlag())
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.workDirEntry.SetText(sd.settings.GetWorkingDirectory())
	sd.helpTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetHelpTimeout() / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	restart := sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved(restart)
	}
}

// apply writes the form into settings and reports whether the program,
// help or directory settings changed
func (sd *SettingsDialog) apply() bool {
	before := []string{
		sd.settings.GetProgram(),
		sd.settings.GetHelpFlag(),
		sd.settings.GetDataDirectory(),
		sd.settings.GetWorkingDirectory(),
	}

	if sd.programEntry.Text != "" {
		sd.settings.SetProgram(sd.programEntry.Text)
	}
	if sd.helpFlagEntry.Text != "" {
		sd.settings.SetHelpFlag(sd.helpFlagEntry.Text)
	}
	if sd.dataDirEntry.Text != "" {
		sd.settings.SetDataDirectory(sd.dataDirEntry.Text)
	}
	if sd.workDirEntry.Text != "" {
		sd.settings.SetWorkingDirectory(sd.workDirEntry.Text)
	}
	if seconds, err := strconv.Atoi(sd.helpTimeoutEntry.Text); err == nil {
		sd.settings.SetHelpTimeoutSeconds(seconds)
	}
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	after := []string{
		sd.settings.GetProgram(),
		sd.settings.GetHelpFlag(),
		sd.settings.GetDataDirectory(),
		sd.settings.GetWorkingDirectory(),
	}
	for i := range before {
		if before[i] != after[i] {
			return true
		}
	}
	return false
}
