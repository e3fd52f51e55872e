// Package overlay draws the debug panel that lists registry objects and
// edits the selected one in place.
package overlay

import (
	"log/slog"

	"github.com/WaxieDLL/OpenGLPlayground/draw"
	"github.com/WaxieDLL/OpenGLPlayground/gui"
)

const (
	defaultX = 10
	defaultY = 10
	// listHeight fits about five entries.
	listHeight = 100
)

// Panel is the "Window" debug panel.
type Panel struct {
	reg         *draw.Registry
	logger      *slog.Logger
	onWireframe func(bool)
	x, y        float32

	wireframe bool
	selected  string
}

// Option configures a Panel.
type Option func(*Panel)

// WithOnWireframe sets the callback run when the wireframe checkbox toggles.
func WithOnWireframe(fn func(on bool)) Option {
	return func(p *Panel) { p.onWireframe = fn }
}

// WithPosition places the panel's top-left corner.
func WithPosition(x, y float32) Option {
	return func(p *Panel) { p.x, p.y = x, y }
}

// WithLogger sets the panel logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a panel over reg.
func New(reg *draw.Registry, opts ...Option) *Panel {
	p := &Panel{
		reg:    reg,
		logger: overlayLogger,
		x:      defaultX,
		y:      defaultY,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Selected returns the selected object name.
func (p *Panel) Selected() (string, bool) {
	return p.selected, p.selected != ""
}

// Wireframe reports the checkbox state.
func (p *Panel) Wireframe() bool {
	return p.wireframe
}

// Draw emits the panel for one frame. Slider edits are written straight
// into the selected object and show up on the next RenderAll.
func (p *Panel) Draw(ctx *gui.Context) {
	ctx.SetCursorPos(p.x, p.y)
	ctx.Panel("Window")(func() {
		if ctx.Checkbox("Wireframe Mode", &p.wireframe) {
			p.logger.Debug("wireframe toggled", "on", p.wireframe)
			if p.onWireframe != nil {
				p.onWireframe(p.wireframe)
			}
		}

		ctx.Text("Object")
		ctx.ListBox("Object", listHeight)(func() {
			for name := range p.reg.All() {
				if ctx.Selectable(name, name == p.selected) && name != p.selected {
					p.selected = name
					p.logger.Debug("object selected", "name", name)
				}
			}
		})

		ctx.Separator()
		p.drawEditor(ctx)
	})
}

func (p *Panel) drawEditor(ctx *gui.Context) {
	if p.selected == "" {
		ctx.TextDisabled("no object selected")
		return
	}
	obj, ok := p.reg.Get(p.selected)
	if !ok {
		// The registry was cleaned up underneath us.
		p.selected = ""
		ctx.TextDisabled("no object selected")
		return
	}
	if obj.Kind() != draw.ShapeRectangle {
		ctx.TextDisabled(obj.Kind().String() + " shape not editable")
		return
	}

	// Geometry snaps to whole pixels.
	w, h := ctx.DisplaySize.X, ctx.DisplaySize.Y
	px := []gui.Option{gui.WithStep(1), gui.WithFormat("%.0f")}
	ctx.PushID(p.selected)
	ctx.SliderFloat("X", &obj.Position[0], 0, w, px...)
	ctx.SliderFloat("Y", &obj.Position[1], 0, h, px...)
	ctx.SliderFloat("W", &obj.Size[0], 0, w, px...)
	ctx.SliderFloat("H", &obj.Size[1], 0, h, px...)
	ctx.ColorEdit4("Color", (*[4]float32)(&obj.Color))
	ctx.PopID()
}
