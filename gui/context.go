package gui

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList *DrawList

	style Style
	font  *FontAtlas

	// Layout
	cursor      Vec2
	layoutStack []*Layout

	// Input (read-only during frame)
	Input *InputState

	// Per-widget state kept between frames
	frame       uint64
	stores      []cleanable
	sliderState *FrameStore[SliderState]
	scrollState *FrameStore[ScrollState]

	// IDs
	idStack   []ID
	idCounter uint32

	// Hit testing is limited to the innermost clip region (list boxes).
	hitClip []Rect

	// Screen
	DisplaySize Vec2
	DeltaTime   float32

	// WantCaptureMouse is true when the mouse is over a GUI element
	// or a widget is being dragged. Applications should ignore mouse
	// input for their own scene while it is set.
	WantCaptureMouse bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	ctx := &Context{
		style:       DefaultStyle(),
		font:        DefaultFontAtlas(),
		layoutStack: make([]*Layout, 0, 16),
		idStack:     make([]ID, 0, 32),
	}
	ctx.sliderState = NewFrameStore[SliderState](ctx)
	ctx.scrollState = NewFrameStore[ScrollState](ctx)
	return ctx
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// SetFont replaces the glyph atlas. A nil atlas restores the default.
func (ctx *Context) SetFont(atlas *FontAtlas) {
	if atlas == nil {
		atlas = DefaultFontAtlas()
	}
	ctx.font = atlas
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.frame++
	for _, s := range ctx.stores {
		s.cleanup(ctx.frame)
	}

	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.hitClip = ctx.hitClip[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
}

// mousePos returns the mouse position, or a point far off-screen without input.
func (ctx *Context) mousePos() Vec2 {
	if ctx.Input == nil {
		return Vec2{-1e9, -1e9}
	}
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

// isHovered returns true if rect is under the mouse and inside the
// current hit clip region.
func (ctx *Context) isHovered(rect Rect) bool {
	p := ctx.mousePos()
	if n := len(ctx.hitClip); n > 0 && !ctx.hitClip[n-1].Contains(p) {
		return false
	}
	return rect.Contains(p)
}

// isClicked returns true if rect was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	if !ctx.isHovered(rect) {
		return false
	}
	guiLogger.Debug("click detected", "id", id, "rect", rect, "mouse", ctx.mousePos())
	return true
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return float32(ctx.font.CellHeight) * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * float32(ctx.font.CellWidth) * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
}

// addText draws text with the current font and scale.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.DrawList.AddText(x, y, text, color, ctx.font, ctx.style.FontScale)
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// CurrentLayoutWidth returns the width left in the current layout
// from the cursor to its right edge.
func (ctx *Context) CurrentLayoutWidth() float32 {
	if layout := ctx.currentLayout(); layout != nil {
		return maxf(0, layout.Width-(ctx.cursor.X-layout.StartX))
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// beginItem applies the layout gap before an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	gap := layout.Gap
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor past an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}
