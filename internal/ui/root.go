package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"pkt.systems/pslog"

	"github.com/ytget/dlshell/internal/config"
	"github.com/ytget/dlshell/internal/help"
	"github.com/ytget/dlshell/internal/launcher"
	"github.com/ytget/dlshell/internal/model"
	"github.com/ytget/dlshell/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	log          pslog.Logger
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	launcher     *launcher.Launcher

	// Ready screen, built once and reused
	ready      fyne.CanvasObject
	header     *widget.Label
	helpSearch *widget.Entry
	helpText   *widget.Label
	args       *ArgumentRow
	addBtn     *widget.Button
	runBtn     *widget.Button
	terminal   *Terminal
	runArea    *fyne.Container

	screen         launcher.Screen
	shownScreen    bool
	helpSource     string
	helpState      model.HelpState
	notifiedExitID model.SessionID
	progress       dialog.Dialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, l *launcher.Launcher) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		log:          pslog.Ctx(ctx),
		window:       window,
		settings:     settings,
		localization: localization,
		launcher:     l,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(func() {
		ui.launcher.Shutdown()
		window.Close()
	})

	ui.createMenu()
	ui.setupReadyScreen()

	l.OnChange(func() {
		fyne.Do(ui.refresh)
	})
	ui.refresh()
	return ui
}

// Start runs the first initialization in the background
func (ui *RootUI) Start() {
	go func() {
		if err := ui.launcher.Initialize(ui.ctx); err != nil {
			ui.log.Debug("initialization ended with error", "err", err)
		}
	}()
}

// setupReadyScreen creates the help pane, argument row and run area
func (ui *RootUI) setupReadyScreen() {
	loc := ui.localization

	ui.header = widget.NewLabel("")
	ui.header.TextStyle = fyne.TextStyle{Bold: true}
	ui.header.Truncation = fyne.TextTruncateEllipsis

	ui.helpText = widget.NewLabel("")
	ui.helpText.TextStyle = fyne.TextStyle{Monospace: true}
	helpScroll := container.NewScroll(ui.helpText)
	helpScroll.SetMinSize(fyne.NewSize(0, HelpMinHeight))

	ui.helpSearch = widget.NewEntry()
	ui.helpSearch.SetPlaceHolder(IconSearch + " " + loc.GetText(KeySearchHelp))
	ui.helpSearch.OnChanged = func(string) {
		ui.renderHelp()
	}

	ui.args = NewArgumentRow(ui.launcher.Editor())
	ui.args.SetOnChange(ui.launcher.Changed)

	ui.addBtn = widget.NewButton(loc.GetText(KeyAdd), ui.onAddArgument)
	ui.runBtn = widget.NewButton(IconPlay+" "+loc.GetText(KeyRun), ui.onRun)
	ui.runBtn.Importance = widget.HighImportance

	ui.terminal = NewTerminal()
	ui.terminal.SetOnResize(ui.launcher.Resize)
	ui.runArea = container.NewStack(container.NewHBox(ui.runBtn, layout.NewSpacer()))

	argsPanel := container.NewVBox(
		ui.args.Container(),
		container.NewHBox(ui.addBtn),
	)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	top := container.NewVBox(container.NewBorder(nil, nil, nil, settingsBtn, ui.header), ui.helpSearch)
	middle := container.NewVSplit(helpScroll, container.NewBorder(argsPanel, nil, nil, nil, ui.runArea))
	middle.SetOffset(0.4)

	ui.ready = container.NewBorder(top, nil, nil, nil, middle)
}

// refresh renders the current launcher snapshot
func (ui *RootUI) refresh() {
	view := ui.launcher.Snapshot()

	// only the ready screen is reused; the others are cheap to rebuild
	if view.Screen != launcher.ScreenReady || !ui.shownScreen || ui.screen != view.Screen {
		ui.window.SetContent(ui.screenContent(view))
		ui.screen = view.Screen
		ui.shownScreen = true
	}
	if view.Screen == launcher.ScreenReady {
		ui.refreshReady(view)
	}
}

// screenContent returns the content for the non-ready screens
func (ui *RootUI) screenContent(view launcher.View) fyne.CanvasObject {
	loc := ui.localization

	switch view.Screen {
	case launcher.ScreenReady:
		return ui.ready

	case launcher.ScreenMissing:
		return container.NewPadded(newInstallPanel(view.Offer, loc, ui.onDownload, ui.onRecheck))

	case launcher.ScreenFailed:
		message := widget.NewLabel(loc.GetText(KeyFatal))
		message.TextStyle = fyne.TextStyle{Bold: true}
		details := widget.NewLabel("")
		if view.Err != nil {
			details.SetText(view.Err.Error())
		}
		details.TextStyle = fyne.TextStyle{Monospace: true}
		details.Wrapping = fyne.TextWrapWord
		return container.NewPadded(container.NewVBox(message, details))

	default:
		return container.NewCenter(widget.NewLabel(loc.Format(KeyLocating, view.Program)))
	}
}

// refreshReady updates the reusable ready screen
func (ui *RootUI) refreshReady(view launcher.View) {
	ui.header.SetText(ui.localization.Format(KeyUsing, view.Executable.Path))

	source := view.Help.Text
	if view.Help.State != model.HelpAvailable {
		source = ""
	}
	if source != ui.helpSource || view.Help.State != ui.helpState || ui.helpText.Text == "" {
		ui.helpSource = source
		ui.helpState = view.Help.State
		ui.renderHelp()
	}

	ui.args.Refresh()

	if view.Session.Status.HoldsHandle() {
		ui.addBtn.Disable()
		ui.showTerminal()
	} else {
		ui.addBtn.Enable()
		ui.showRunButton()
	}

	if view.Session.Status == model.SessionExited && view.Session.ID != ui.notifiedExitID {
		ui.notifiedExitID = view.Session.ID
		ui.showCompletion(view.Program, view.Session.Outcome)
	}
}

// renderHelp shows the help text filtered by the search entry
func (ui *RootUI) renderHelp() {
	if ui.helpSource == "" {
		key := KeyHelpUnavailable
		if ui.helpState == model.HelpPending {
			key = KeyGettingHelp
		}
		ui.helpText.SetText(ui.localization.GetText(key))
		return
	}

	query := strings.TrimSpace(ui.helpSearch.Text)
	if query == "" {
		ui.helpText.SetText(ui.helpSource)
		return
	}

	lines := help.Search(ui.helpSource, query)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.Text
	}
	ui.helpText.SetText(strings.Join(out, "\n"))
}

func (ui *RootUI) showTerminal() {
	if len(ui.runArea.Objects) == 1 && ui.runArea.Objects[0] == ui.terminal {
		return
	}
	ui.runArea.Objects = []fyne.CanvasObject{ui.terminal}
	ui.runArea.Refresh()
}

func (ui *RootUI) showRunButton() {
	if len(ui.runArea.Objects) == 1 && ui.runArea.Objects[0] != ui.terminal {
		return
	}
	ui.runArea.Objects = []fyne.CanvasObject{container.NewHBox(ui.runBtn, layout.NewSpacer())}
	ui.runArea.Refresh()
}

// onRun starts the program in the embedded terminal
func (ui *RootUI) onRun() {
	ui.terminal.Reset()
	// the terminal has to be laid out before its geometry is read
	ui.showTerminal()

	if _, err := ui.launcher.Run(ui.terminal); err != nil {
		ui.showRunButton()
		dialog.ShowError(err, ui.window)
		return
	}
	if ui.launcher.Controller().State().Status == model.SessionIdle {
		ui.showRunButton()
		return
	}
	ui.window.Canvas().Focus(ui.terminal)
}

// showCompletion tells the user how the program ended and discards the
// session once the dialog is dismissed
func (ui *RootUI) showCompletion(program string, outcome model.Outcome) {
	summary := outcome.Summary(program)

	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyProcessFinished),
		Content: summary,
	})

	d := dialog.NewInformation(ui.localization.GetText(KeyProcessFinished), summary, ui.window)
	d.SetOnClosed(func() {
		ui.launcher.Acknowledge()
	})
	d.Show()
}

// onAddArgument prompts for one literal argument
func (ui *RootUI) onAddArgument() {
	loc := ui.localization

	entry := widget.NewEntry()
	entry.SetPlaceHolder(loc.GetText(KeyArgument))
	expand := widget.NewCheck(loc.GetText(KeyExpandPlaylist), nil)

	items := []*widget.FormItem{
		widget.NewFormItem(loc.GetText(KeyArgument), entry),
		widget.NewFormItem("", expand),
	}

	form := dialog.NewForm(loc.GetText(KeyAddArgument), loc.GetText(KeyAdd), loc.GetText(KeyCancel), items, func(confirmed bool) {
		if !confirmed {
			return
		}
		ui.addArgument(entry.Text, expand.Checked)
	}, ui.window)
	form.Resize(fyne.NewSize(SettingsDialogWidth, 0))
	form.Show()
	ui.window.Canvas().Focus(entry)
}

// addArgument expands text off the UI goroutine and appends the result
func (ui *RootUI) addArgument(text string, expandPlaylist bool) {
	go func() {
		args, err := ui.launcher.ExpandArgument(ui.ctx, text, expandPlaylist)
		fyne.Do(func() {
			if err != nil {
				ui.log.Warn("failed to add argument", "err", err)
				dialog.ShowError(err, ui.window)
				return
			}
			if err := ui.launcher.AddArguments(args...); err != nil {
				dialog.ShowError(err, ui.window)
			}
		})
	}()
}

// onDownload downloads the program and initializes again
func (ui *RootUI) onDownload() {
	program := ui.launcher.Program()
	bar := widget.NewProgressBarInfinite()
	ui.progress = dialog.NewCustomWithoutButtons(ui.localization.Format(KeyDownloading, program), bar, ui.window)
	ui.progress.Show()

	go func() {
		err := ui.launcher.DownloadAndReinitialize(ui.ctx)
		fyne.Do(func() {
			ui.progress.Hide()
			if err != nil {
				ui.log.Error("failed to download and reinitialize", "err", err)
				dialog.ShowError(err, ui.window)
			}
		})
	}()
}

// onRecheck runs initialization again after a manual install
func (ui *RootUI) onRecheck() {
	go func() {
		if err := ui.launcher.Recheck(ui.ctx); err != nil {
			ui.log.Debug("recheck ended with error", "err", err)
		}
	}()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	loc := ui.localization

	settingsItem := fyne.NewMenuItem(loc.GetText(KeySettings), ui.onShowSettings)
	openItem := fyne.NewMenuItem(IconFolder+" "+loc.GetText(KeyOpenDownloads), ui.onOpenDownloads)

	languageMenu := fyne.NewMenu(loc.GetText(KeyLanguage))
	for code, name := range loc.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if loc.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(loc.GetText(KeyFile), settingsItem, openItem),
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

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	loc := ui.localization
	ui.window.SetTitle(loc.GetText(KeyAppTitle))
	ui.helpSearch.SetPlaceHolder(IconSearch + " " + loc.GetText(KeySearchHelp))
	ui.addBtn.SetText(loc.GetText(KeyAdd))
	ui.runBtn.SetText(IconPlay + " " + loc.GetText(KeyRun))
	ui.shownScreen = false
	ui.refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func(restart bool) {
		if restart {
			dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeyRestartRequired), ui.window)
		}
	}).Show()
}

// onOpenDownloads opens the working directory in the file manager
func (ui *RootUI) onOpenDownloads() {
	dir := ui.settings.GetWorkingDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.log.Warn("failed to create working directory", "dir", dir, "err", err)
	}
	if err := platform.OpenDirectory(dir); err != nil {
		ui.log.Warn("failed to open directory", "dir", dir, "err", err)
		dialog.ShowError(err, ui.window)
	}
}
