package ui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dlshell/internal/download"
)

// newInstallPanel renders the install instruction for a missing program
func newInstallPanel(offer download.Offer, loc *Localization, onDownload, onRecheck func()) fyne.CanvasObject {
	header := widget.NewLabel(loc.Format(KeyNotInstalled, offer.Program))
	header.TextStyle = fyne.TextStyle{Bold: true}

	switch offer.Kind {
	case download.OfferDownload:
		link := widget.NewButton(loc.Format(KeyDownloadInstall, offer.Program), onDownload)
		link.Importance = widget.LowImportance
		return container.NewVBox(header, link)

	case download.OfferInstallPage:
		page, err := url.Parse(offer.URL)
		if err != nil {
			return container.NewVBox(header, widget.NewLabel(loc.Format(KeyInstallManually, offer.Program)))
		}
		link := widget.NewHyperlink(loc.Format(KeyInstallPage, offer.Program), page)
		recheck := widget.NewButton(loc.GetText(KeyRecheck), onRecheck)
		return container.NewVBox(header, link, container.NewHBox(recheck))

	default:
		return container.NewVBox(header, widget.NewLabel(loc.Format(KeyInstallManually, offer.Program)))
	}
}
