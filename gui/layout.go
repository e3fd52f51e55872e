package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Width is the space available to children.
	Width float32

	// Accumulated content size
	MaxWidth, MaxHeight float32

	Gap     float32
	Padding float32

	// MinWidth widens a panel beyond its content.
	MinWidth float32

	ItemCount int
}

const defaultPanelWidth float32 = 240

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding of a panel.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets the width available to children.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// MinWidth sets the minimum outer width of a panel.
func MinWidth(w float32) LayoutOption {
	return func(l *Layout) { l.MinWidth = w }
}

// pushLayout starts a layout at the cursor.
func (ctx *Context) pushLayout(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.CurrentLayoutWidth()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout, reports it to its parent as a
// single item and returns its content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}

	if parent := ctx.currentLayout(); parent != nil {
		if parent.Type == LayoutVertical {
			ctx.cursor.X = layout.StartX
			ctx.cursor.Y = layout.StartY + layout.MaxHeight
			parent.MaxWidth = maxf(parent.MaxWidth, layout.StartX+layout.MaxWidth-parent.StartX)
			parent.MaxHeight = ctx.cursor.Y - parent.StartY
		} else {
			ctx.cursor.X = layout.StartX + layout.MaxWidth
			ctx.cursor.Y = parent.StartY
			parent.MaxWidth = ctx.cursor.X - parent.StartX
			parent.MaxHeight = maxf(parent.MaxHeight, layout.MaxHeight)
		}
		parent.ItemCount++
	}

	return bounds
}

// Panel draws a titled, auto-sized panel at the cursor.
// Returns a function that should be called with the content closure.
//
// Usage:
//
//	ctx.Panel("Window", Gap(6), MinWidth(260))(func() {
//	    ctx.Text("Hello")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		pad := layout.Padding

		startX, startY := ctx.cursor.X, ctx.cursor.Y

		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + pad
		}

		if layout.Width == 0 {
			outer := layout.MinWidth
			if outer == 0 {
				outer = defaultPanelWidth
			}
			layout.Width = outer - pad*2
		}

		ctx.cursor.X += pad
		ctx.cursor.Y += pad + headerH

		// Panels are top-level: they do not report to an enclosing layout.
		saved := ctx.layoutStack
		ctx.layoutStack = ctx.layoutStack[len(ctx.layoutStack):]
		ctx.pushLayout(layout)
		contents()
		bounds := ctx.popLayout()
		ctx.layoutStack = saved

		panelW := maxf(bounds.W+pad*2, layout.MinWidth)
		panelH := bounds.H + pad*2 + headerH
		if title != "" {
			panelW = maxf(panelW, ctx.MeasureText(title).X+pad*2)
		}

		ctx.DrawList.InsertRect(startX, startY, panelW, panelH, ctx.style.PanelColor)

		if title != "" {
			ctx.DrawList.AddRect(startX, startY, panelW, headerH, ctx.style.PanelHeaderBgColor)
			textColor := ctx.style.PanelHeaderTextColor
			if textColor == 0 {
				textColor = ctx.style.TextColor
			}
			ctx.addText(startX+pad, startY+(headerH-ctx.LineHeight())/2, title, textColor)
		}

		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
				ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}

		if (Rect{X: startX, Y: startY, W: panelW, H: panelH}).Contains(ctx.mousePos()) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor.X = startX
		ctx.cursor.Y = startY + panelH
	}
}

// VStack creates a vertical layout container.
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginItem()
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("X")
//	    ctx.SliderFloat("##x", &x, 0, 100)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.beginItem()
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds empty space along the layout direction.
func (ctx *Context) Spacing(pixels float32) {
	ctx.beginItem()
	if layout := ctx.currentLayout(); layout != nil && layout.Type == LayoutHorizontal {
		ctx.AdvanceCursor(Vec2{X: pixels})
		return
	}
	ctx.AdvanceCursor(Vec2{Y: pixels})
}

// Separator draws a horizontal line across the layout width.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.CurrentLayoutWidth()
	ctx.DrawList.AddRect(pos.X, pos.Y+2, w, 1, ctx.style.SeparatorColor)
	ctx.AdvanceCursor(Vec2{X: w, Y: 5})
}

// ListBox draws a framed, scrollable list area.
// height specifies the visible height; contents can be larger.
//
// Usage:
//
//	ctx.ListBox("objects", 120)(func() {
//	    for _, name := range names {
//	        if ctx.Selectable(name, name == selected) {
//	            selected = name
//	        }
//	    }
//	})
func (ctx *Context) ListBox(id string, height float32, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		scrollID := ctx.GetID(id)
		scroll := ctx.scrollState.Get(scrollID, ScrollState{})
		scroll.UpdateSmooth(ctx.DeltaTime)

		pos := ctx.ItemPos()
		w := ctx.CurrentLayoutWidth()
		pad := ctx.style.InputPadding
		view := Rect{X: pos.X, Y: pos.Y, W: w, H: height}

		ctx.DrawList.AddRect(view.X, view.Y, view.W, view.H, ctx.style.InputBgColor)
		ctx.DrawList.PushClipRect(view.X, view.Y, view.X+view.W, view.Y+view.H)
		ctx.hitClip = append(ctx.hitClip, view)

		// The list body is its own top-level layout so the scrolled cursor
		// does not leak into the parent.
		saved := ctx.layoutStack
		ctx.layoutStack = ctx.layoutStack[len(ctx.layoutStack):]
		ctx.cursor = Vec2{X: pos.X + pad, Y: pos.Y + pad - scroll.ScrollY}
		layout := &Layout{Type: LayoutVertical, Width: w - pad*2, Gap: SpaceXS}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		bounds := ctx.popLayout()
		ctx.layoutStack = saved

		ctx.hitClip = ctx.hitClip[:len(ctx.hitClip)-1]
		ctx.DrawList.PopClipRect()

		contentH := bounds.H + pad*2
		scroll.ContentHeight = contentH
		maxScroll := maxf(0, contentH-height)
		if ctx.Input != nil && ctx.Input.MouseWheelY != 0 && view.Contains(ctx.mousePos()) {
			scroll.TargetScrollY -= ctx.Input.MouseWheelY * 30
		}
		scroll.TargetScrollY = clampf(scroll.TargetScrollY, 0, maxScroll)
		scroll.ScrollY = clampf(scroll.ScrollY, 0, maxScroll)

		ctx.DrawList.AddRectOutline(view.X, view.Y, view.W, view.H, ctx.style.InputBorderColor, 1)

		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: w, Y: height})
	}
}
