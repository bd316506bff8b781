package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/shopgrid/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onApply  func()

	// UI components
	minLatencyEntry *widget.Entry
	maxLatencyEntry *widget.Entry
	skeletonEntry   *widget.Entry
	failureCheck    *widget.Check
	metricsEntry    *widget.Entry
}

// ShowSettingsDialog creates and shows the settings dialog. onApply runs
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onApply func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onApply:  onApply,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.minLatencyEntry = widget.NewEntry()
	sd.minLatencyEntry.SetPlaceHolder("350")

	sd.maxLatencyEntry = widget.NewEntry()
	sd.maxLatencyEntry.SetPlaceHolder("1200")

	sd.skeletonEntry = widget.NewEntry()
	sd.skeletonEntry.SetPlaceHolder("1-24")

	sd.failureCheck = widget.NewCheck("Reject searches (demo the error panel)", nil)

	sd.metricsEntry = widget.NewEntry()
	sd.metricsEntry.SetPlaceHolder("127.0.0.1:9091 (empty = off)")

	form := container.NewVBox(
		widget.NewLabel("Min simulated latency (ms):"),
		sd.minLatencyEntry,
		widget.NewLabel("Max simulated latency (ms):"),
		sd.maxLatencyEntry,
		widget.NewLabel("Skeleton cards while loading:"),
		sd.skeletonEntry,
		sd.failureCheck,
		widget.NewLabel("Metrics listener (applies on next launch):"),
		sd.metricsEntry,
	)

	sd.dialog = dialog.NewCustomConfirm("Settings", "Save", "Cancel", form, func(confirmed bool) {
		if confirmed {
			sd.saveSettings()
		}
	}, sd.window)
	sd.dialog.Resize(fyne.NewSize(420, 380))
}

// loadCurrentSettings populates the dialog from preferences
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.minLatencyEntry.SetText(strconv.Itoa(int(sd.settings.GetMinLatency().Milliseconds())))
	sd.maxLatencyEntry.SetText(strconv.Itoa(int(sd.settings.GetMaxLatency().Milliseconds())))
	sd.skeletonEntry.SetText(strconv.Itoa(sd.settings.GetSkeletonCards()))
	sd.failureCheck.SetChecked(sd.settings.GetSimulateFailure())
	sd.metricsEntry.SetText(sd.settings.GetMetricsAddress())
}

// saveSettings persists the dialog values; unparseable numbers keep their
// previous value
func (sd *SettingsDialog) saveSettings() {
	if ms, err := strconv.Atoi(sd.minLatencyEntry.Text); err == nil {
		sd.settings.SetMinLatencyMS(ms)
	}
	if ms, err := strconv.Atoi(sd.maxLatencyEntry.Text); err == nil {
		sd.settings.SetMaxLatencyMS(ms)
	}
	if count, err := strconv.Atoi(sd.skeletonEntry.Text); err == nil {
		sd.settings.SetSkeletonCards(count)
	}
	sd.settings.SetSimulateFailure(sd.failureCheck.Checked)
	sd.settings.SetMetricsAddress(sd.metricsEntry.Text)

	if sd.onApply != nil {
		sd.onApply()
	}
}
