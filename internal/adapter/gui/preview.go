package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// backgroundColor is the fixed dark fill behind the preview.
var backgroundColor = color.NRGBA{R: 32, G: 32, B: 36, A: 255}

const placeholderText = "No image loaded"

// PreviewSurface renders the currently loaded raster centered and uniformly
// scaled to fit, never above its native size. With no image loaded it shows
// placeholder text instead.
type PreviewSurface struct {
	widget.BaseWidget

	img image.Image
}

func NewPreviewSurface() *PreviewSurface {
	p := &PreviewSurface{}
	p.ExtendBaseWidget(p)
	return p
}

// SetImage replaces the displayed image and triggers a redraw. A nil image
// clears the surface back to the placeholder.
func (p *PreviewSurface) SetImage(img image.Image) {
	p.img = img
	p.Refresh()
}

func (p *PreviewSurface) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(backgroundColor)

	imgObj := canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	imgObj.FillMode = canvas.ImageFillContain
	imgObj.Hide()

	placeholder := canvas.NewText(placeholderText, color.NRGBA{R: 160, G: 160, B: 166, A: 255})
	placeholder.Alignment = fyne.TextAlignCenter

	return &previewRenderer{
		surface:     p,
		background:  background,
		image:       imgObj,
		placeholder: placeholder,
	}
}

type previewRenderer struct {
	surface     *PreviewSurface
	background  *canvas.Rectangle
	image       *canvas.Image
	placeholder *canvas.Text
	size        fyne.Size
}

func (r *previewRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	r.layoutImage()

	textSize := r.placeholder.MinSize()
	r.placeholder.Resize(textSize)
	r.placeholder.Move(fyne.NewPos((size.Width-textSize.Width)/2, (size.Height-textSize.Height)/2))
}

// layoutImage centers the image and scales it down to fit, keeping the
// aspect ratio and never exceeding 1:1.
func (r *previewRenderer) layoutImage() {
	img := r.surface.img
	if img == nil {
		return
	}

	bounds := img.Bounds()
	iw := float32(bounds.Dx())
	ih := float32(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	scale := r.size.Width / iw
	if s := r.size.Height / ih; s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}

	w := iw * scale
	h := ih * scale
	r.image.Resize(fyne.NewSize(w, h))
	r.image.Move(fyne.NewPos((r.size.Width-w)/2, (r.size.Height-h)/2))
}

func (r *previewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 360)
}

func (r *previewRenderer) Refresh() {
	if r.surface.img != nil {
		r.image.Image = r.surface.img
		r.image.Show()
		r.placeholder.Hide()
	} else {
		r.image.Hide()
		r.placeholder.Show()
	}
	r.layoutImage()
	r.background.Refresh()
	r.image.Refresh()
	r.placeholder.Refresh()
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.image, r.placeholder}
}

func (r *previewRenderer) Destroy() {}
