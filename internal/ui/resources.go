package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	AppIcon = "yt-downloader.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

func newLogo(res fyne.Resource) *canvas.Image {
	img := canvas.NewImageFromResource(res)
	img.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
	img.FillMode = canvas.ImageFillContain
	return img
}
