package tray

import "fyne.io/fyne/v2"

// notifier sends desktop notifications through the fyne app
type notifier struct {
	app fyne.App
}

func (n notifier) Notify(title, message string) {
	n.app.SendNotification(fyne.NewNotification(title, message))
}
