package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/shopgrid/internal/boundary"
	"github.com/shopgrid/shopgrid/internal/catalog"
	"github.com/shopgrid/shopgrid/internal/config"
	"github.com/shopgrid/shopgrid/internal/model"
	"github.com/shopgrid/shopgrid/internal/query"
)

// RootUI represents the main UI structure
type RootUI struct {
	window     fyne.Window
	settings   *config.Settings
	source     *catalog.Source
	controller *query.Controller
	boundary   boundary.Boundary

	searchEntry *widget.Entry
	pendingBar  *widget.ProgressBarInfinite
	countLabel  *widget.Label
	resultsArea *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, source *catalog.Source, controller *query.Controller) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:     window,
		settings:   settings,
		source:     source,
		controller: controller,
	}

	ui.applySettings()
	ui.setupUI()

	// Every controller change (input echo, commit, settlement of the
	// current resource) lands here and re-renders the results region.
	controller.SetUpdateCallback(ui.refresh)
	ui.refresh()

	return ui
}

// applySettings pushes the persisted knobs into the simulated backend
func (ui *RootUI) applySettings() {
	ui.source.SetLatencyBounds(ui.settings.GetMinLatency(), ui.settings.GetMaxLatency())
	ui.source.SetSimulateFailure(ui.settings.GetSimulateFailure())
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// The entry holds its own text, so keystrokes echo without waiting on
	// any resource work; OnChanged only hands the string to the controller.
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(SearchPlaceholder)
	ui.searchEntry.OnChanged = func(text string) {
		ui.controller.OnQueryChange(text)
	}

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, settingsBtn, ui.searchEntry)

	ui.pendingBar = widget.NewProgressBarInfinite()
	ui.pendingBar.Hide()

	ui.countLabel = widget.NewLabel("")

	ui.resultsArea = container.NewStack()

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.pendingBar, ui.countLabel), // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(ui.resultsArea),
	)

	ui.window.SetContent(content)
}

// refresh re-renders from the current controller snapshot on the UI thread
func (ui *RootUI) refresh() {
	snap := ui.controller.Snapshot()
	fyne.Do(func() {
		ui.render(snap)
	})
}

// render decides between skeletons, the error panel, and the result grid.
// Must run on the UI thread.
func (ui *RootUI) render(snap query.Snapshot) {
	if snap.Pending {
		ui.pendingBar.Show()
	} else {
		ui.pendingBar.Hide()
	}

	if snap.Resource == nil {
		ui.showSkeletons()
		return
	}

	records, err, ready := snap.Resource.TryRead()
	if !ready {
		// Suspended; the controller pings again once the resource settles.
		ui.showSkeletons()
		return
	}

	if err != nil {
		ui.boundary.Capture(err)
		ui.showFailure(ui.boundary.Failure())
		return
	}

	// A successful read heals the boundary: any captured failure belonged
	// to a resource that is no longer current.
	ui.boundary.Clear()

	// Filter with the deferred query, not the live one, so list work never
	// races keystroke handling.
	filtered := model.Filter(records, snap.DeferredQuery)
	ui.showResults(filtered, snap.DeferredQuery)
}

// showSkeletons renders the fixed-count placeholder grid
func (ui *RootUI) showSkeletons() {
	count := ui.settings.GetSkeletonCards()
	cards := make([]fyne.CanvasObject, count)
	for i := range cards {
		cards[i] = NewSkeletonCard()
	}

	ui.countLabel.SetText(LoadingLabel)
	ui.setResultsContent(container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight), cards...))
}

// showFailure renders the recovery fallback
func (ui *RootUI) showFailure(reason error) {
	ui.countLabel.SetText("")
	ui.setResultsContent(newErrorPanel(reason, ui.onRetry))
}

// showResults renders the filtered record grid labeled with the deferred query
func (ui *RootUI) showResults(records []model.Record, deferredQuery string) {
	cards := make([]fyne.CanvasObject, len(records))
	for i, r := range records {
		cards[i] = NewResultCard(r)
	}

	ui.countLabel.SetText(resultCountText(len(records), deferredQuery))
	ui.setResultsContent(container.NewGridWrap(fyne.NewSize(CardWidth, CardHeight), cards...))
}

func (ui *RootUI) setResultsContent(content fyne.CanvasObject) {
	ui.resultsArea.Objects = []fyne.CanvasObject{content}
	ui.resultsArea.Refresh()
}

// onRetry clears the captured failure only. No automatic re-query: if the
// current resource is still failed the next render recaptures it.
func (ui *RootUI) onRetry() {
	ui.boundary.Clear()
	ui.refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.applySettings()
		widget.ShowPopUp(widget.NewLabel("Settings saved"), ui.window.Canvas())
	})
}

// resultCountText builds the caption under the search box
func resultCountText(count int, deferredQuery string) string {
	trimmed := strings.TrimSpace(deferredQuery)
	if trimmed == "" {
		return fmt.Sprintf("%d results", count)
	}
	return fmt.Sprintf("%d results for %q", count, trimmed)
}
