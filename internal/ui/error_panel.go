package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// newErrorPanel builds the recovery fallback for the results region. The
// retry action only clears the captured failure: re-reading a still-failed
// resource lands back here, and the view recovers for real only when a new
// successful search is committed.
func newErrorPanel(reason error, onRetry func()) fyne.CanvasObject {
	icon := widget.NewLabel(IconError)

	message := widget.NewLabel(fmt.Sprintf("Search failed: %v", reason))
	message.Wrapping = fyne.TextWrapWord
	message.TextStyle = fyne.TextStyle{Bold: true}

	hint := widget.NewLabel("Retry clears the error panel only; change the query to search again.")
	hint.Wrapping = fyne.TextWrapWord
	hint.Importance = widget.LowImportance

	retryBtn := widget.NewButton(RetryLabel, onRetry)
	retryBtn.Importance = widget.HighImportance

	return container.NewCenter(container.NewVBox(
		container.NewHBox(icon, message),
		hint,
		container.NewCenter(retryBtn),
	))
}
