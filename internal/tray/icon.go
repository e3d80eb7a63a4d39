package tray

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

//go:embed wordbar_64.png
var iconData []byte

// GetAppIcon returns the tray icon as a Fyne resource
func GetAppIcon() fyne.Resource {
	return &fyne.StaticResource{
		StaticName:    "wordbar.png",
		StaticContent: iconData,
	}
}
