package gui

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	atlasFirstRune = 32
	atlasLastRune  = 127
	atlasColumns   = 16
	atlasRows      = (atlasLastRune - atlasFirstRune + 1 + atlasColumns - 1) / atlasColumns
)

// FontAtlas is a single-channel glyph texture for printable ASCII,
// laid out as a 16-column grid of fixed-size cells.
type FontAtlas struct {
	// Image holds glyph coverage; the backend uploads Pix as a RED texture.
	Image *image.Alpha

	// CellWidth and CellHeight are the pixel size of one glyph cell.
	CellWidth  int
	CellHeight int
}

// NewFontAtlas rasterizes runes 32..127 of a monospace face into an atlas.
func NewFontAtlas(face font.Face) *FontAtlas {
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = fixed.I(7)
	}
	m := face.Metrics()

	cw := adv.Ceil()
	ch := m.Height.Ceil()
	img := image.NewAlpha(image.Rect(0, 0, cw*atlasColumns, ch*atlasRows))

	for r := rune(atlasFirstRune); r <= atlasLastRune; r++ {
		idx := int(r - atlasFirstRune)
		cell := image.Pt((idx%atlasColumns)*cw, (idx/atlasColumns)*ch)
		dot := fixed.P(cell.X, cell.Y+m.Ascent.Ceil())

		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		xdraw.DrawMask(img, dr, image.Opaque, image.Point{}, mask, maskp, xdraw.Over)
	}

	return &FontAtlas{Image: img, CellWidth: cw, CellHeight: ch}
}

var defaultAtlas *FontAtlas

// DefaultFontAtlas returns an atlas built from basicfont.Face7x13.
// The atlas is built once and shared.
func DefaultFontAtlas() *FontAtlas {
	if defaultAtlas == nil {
		defaultAtlas = NewFontAtlas(basicfont.Face7x13)
	}
	return defaultAtlas
}

// Size returns the atlas texture dimensions.
func (a *FontAtlas) Size() (w, h int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// UV returns texture coordinates of the glyph cell for r.
// Runes outside the atlas map to '?'.
func (a *FontAtlas) UV(r rune) (u0, v0, u1, v1 float32) {
	r = unicodeFallback(r)
	if r < atlasFirstRune || r > atlasLastRune {
		r = '?'
	}
	idx := int(r - atlasFirstRune)
	col := float32(idx % atlasColumns)
	row := float32(idx / atlasColumns)

	w, h := a.Size()
	cw := float32(a.CellWidth) / float32(w)
	ch := float32(a.CellHeight) / float32(h)
	return col * cw, row * ch, (col + 1) * cw, (row + 1) * ch
}

// unicodeFallback maps common symbols to ASCII equivalents.
func unicodeFallback(r rune) rune {
	if r >= atlasFirstRune && r <= atlasLastRune {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
