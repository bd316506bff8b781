package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shopgrid/shopgrid/internal/model"
)

// ResultCard is a single product tile in the results grid. The same widget
// doubles as the skeleton placeholder shown while a search is in flight.
type ResultCard struct {
	widget.BaseWidget

	titleLabel *widget.Label
	brandLabel *widget.Label
	priceLabel *widget.Label
}

// NewResultCard creates a card for one catalog record
func NewResultCard(record model.Record) *ResultCard {
	c := newCard(record.Title, record.Brand, record.DisplayPrice())
	return c
}

// NewSkeletonCard creates a placeholder card for the pending state
func NewSkeletonCard() *ResultCard {
	c := newCard(SkeletonTitle, SkeletonBrand, SkeletonPrice)
	c.titleLabel.Importance = widget.LowImportance
	c.brandLabel.Importance = widget.LowImportance
	c.priceLabel.Importance = widget.LowImportance
	return c
}

func newCard(title, brand, price string) *ResultCard {
	c := &ResultCard{
		titleLabel: widget.NewLabel(title),
		brandLabel: widget.NewLabel(brand),
		priceLabel: widget.NewLabel(price),
	}

	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis
	c.brandLabel.Importance = widget.MediumImportance
	c.priceLabel.Alignment = fyne.TextAlignTrailing

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer creates the widget renderer
func (c *ResultCard) CreateRenderer() fyne.WidgetRenderer {
	bottom := container.NewBorder(nil, nil, c.brandLabel, c.priceLabel)
	layout := container.NewPadded(container.NewVBox(c.titleLabel, bottom))
	return widget.NewSimpleRenderer(layout)
}

// MinSize keeps all cards on the fixed grid cell footprint
func (c *ResultCard) MinSize() fyne.Size {
	min := c.BaseWidget.MinSize()
	if min.Width < CardWidth {
		min.Width = CardWidth
	}
	if min.Height < CardHeight {
		min.Height = CardHeight
	}
	return min
}
