package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, ctx.style.TextDisabledColor)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Selectable draws a full-width list item.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.GetID(label)
	disabled := GetOpt(o, OptDisabled)

	w := GetOpt(o, OptWidth)
	if w == 0 {
		w = maxf(ctx.CurrentLayoutWidth(), ctx.MeasureText(label).X)
	}
	h := ctx.LineHeight() + SpaceXS*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	hovered := !disabled && ctx.isHovered(rect)
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		textColor = ctx.style.TextDisabledColor
	case selected:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.SelectedBgColor)
		textColor = ctx.style.SelectedTextColor
	case hovered:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
	}
	ctx.addText(pos.X+SpaceSM, pos.Y+SpaceXS, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(Vec2{w, h})
	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.GetID(label)
	disabled := GetOpt(o, OptDisabled)

	boxSize := ctx.LineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	boxColor := ctx.style.ButtonColor
	if !disabled && ctx.isHovered(rect) {
		boxColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.InputBorderColor, 1)

	if *value {
		inset := boxSize * 0.25
		ctx.DrawList.AddRect(pos.X+inset, pos.Y+inset, boxSize-inset*2, boxSize-inset*2, ctx.style.CheckMarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, textColor)

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	ctx.AdvanceCursor(Vec2{totalWidth, boxSize})
	return changed
}
