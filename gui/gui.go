package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer Renderer
	style    Style
	font     *FontAtlas
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithFontAtlas sets the glyph atlas used for text. The renderer must
// have uploaded the same atlas as its font texture.
func WithFontAtlas(atlas *FontAtlas) GUIOption {
	return func(g *GUI) { g.font = atlas }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		font:     DefaultFontAtlas(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.DrawList.FontTexture = g.renderer.FontTextureID()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.SetFont(g.font)
	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	dl := g.ctx.DrawList
	if dl == nil {
		return nil
	}
	g.ctx.DrawList = nil
	defer ReleaseDrawList(dl)

	dl.Finalize()
	return g.renderer.Render(dl)
}

// Context returns the GUI context. Widgets may only be drawn on it
// between Begin and End; it can be passed to NewFrameStore at any time.
func (g *GUI) Context() *Context {
	return g.ctx
}

// WantCaptureMouse reports whether the last frame's UI was under the
// mouse or dragging a widget.
func (g *GUI) WantCaptureMouse() bool {
	return g.ctx.WantCaptureMouse
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// Resize notifies the renderer of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
