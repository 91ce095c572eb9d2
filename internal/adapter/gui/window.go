// Package gui is the fyne front end. It owns the widgets and forwards every
// user action to the session controller; all work happens synchronously in
// the event callbacks.
package gui

import (
	"net/url"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/bnema/jxlview/internal/service"
)

// openExtensions drives the file dialog filter: every supported input plus
// the target format itself.
var openExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ppm", ".pgm", ".jxl"}

const downloadURL = "https://github.com/libjxl/libjxl/releases"

type UI struct {
	window fyne.Window
	sess   *service.Session

	preview    *PreviewSurface
	status     *widget.Label
	quality    *widget.Entry
	convertBtn *widget.Button
}

// NewUI assembles the main window around sess. defaultQuality seeds the
// quality field.
func NewUI(window fyne.Window, sess *service.Session, defaultQuality int) *UI {
	ui := &UI{window: window, sess: sess}

	ui.preview = NewPreviewSurface()

	ui.status = widget.NewLabel("Ready - open an image file")
	ui.status.Truncation = fyne.TextTruncateEllipsis

	ui.quality = widget.NewEntry()
	ui.quality.SetText(strconv.Itoa(defaultQuality))

	openBtn := widget.NewButton("Open Image...", ui.openFile)
	ui.convertBtn = widget.NewButton("Convert to JXL", ui.convert)
	ui.convertBtn.Disable()

	toolbar := container.NewBorder(nil, nil,
		openBtn,
		container.NewHBox(widget.NewLabel("Quality:"), ui.quality, ui.convertBtn),
	)

	window.SetContent(container.NewBorder(toolbar, ui.status, nil, nil, ui.preview))
	window.Resize(fyne.NewSize(800, 600))
	window.SetOnClosed(sess.Close)

	return ui
}

// openFile shows the native file chooser. A dismissed dialog changes
// nothing.
func (ui *UI) openFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		out := ui.sess.Open(path)
		if out.Image != nil {
			ui.preview.SetImage(out.Image)
		}
		ui.status.SetText(out.Status)
		ui.syncConvertButton()
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(openExtensions))
	fd.Show()
}

// convert runs the encoder with the quality field's current text. An invalid
// value is corrected to the default and written back into the field.
func (ui *UI) convert() {
	status, quality, corrected := ui.sess.Convert(ui.quality.Text)
	if corrected {
		ui.quality.SetText(strconv.Itoa(quality))
	}
	ui.status.SetText(status)
}

func (ui *UI) syncConvertButton() {
	if ui.sess.CanConvert() {
		ui.convertBtn.Enable()
	} else {
		ui.convertBtn.Disable()
	}
}

// ShowToolError presents a blocking error window for a failed tool probe and
// quits the application once it is acknowledged. The main window is never
// constructed in this path.
func ShowToolError(a fyne.App, probeErr error) fyne.Window {
	w := a.NewWindow("jxlview - missing dependency")

	link, _ := url.Parse(downloadURL)
	quit := widget.NewButton("Close", a.Quit)

	w.SetContent(container.NewVBox(
		widget.NewLabel("jxlview needs the JPEG XL command-line tools (cjxl and djxl)."),
		widget.NewLabel(probeErr.Error()),
		widget.NewHyperlink("Download libjxl", link),
		quit,
	))
	w.SetOnClosed(a.Quit)
	w.Resize(fyne.NewSize(480, 200))
	return w
}
