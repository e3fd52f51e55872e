package gui

import (
	"fmt"
	"strings"
)

const (
	sliderGrabWidth  float32 = 10
	sliderMinWidth   float32 = 40
	sliderValueChars         = 7
)

// SliderFloat draws a horizontal slider for float32 values.
// The slider fills the remaining layout width unless WithWidth is given.
// Values are clamped to [minVal, maxVal]. Returns true if the value changed.
//
// Usage:
//
//	if ctx.SliderFloat("X", &x, 0, 1280) {
//	    obj.Position[0] = x
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.GetID(label)
	disabled := GetOpt(o, OptDisabled)
	state := ctx.sliderState.Get(id, SliderState{})

	h := ctx.LineHeight()
	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	valueWidth := float32(sliderValueChars*ctx.font.CellWidth) * ctx.style.FontScale

	sliderWidth := GetOpt(o, OptWidth)
	if sliderWidth <= 0 {
		sliderWidth = ctx.CurrentLayoutWidth() - labelWidth - valueWidth - ctx.style.ItemSpacing
	}
	sliderWidth = maxf(sliderWidth, sliderMinWidth)

	if label != "" {
		ctx.addText(pos.X, pos.Y, label, ctx.style.TextColor)
	}

	trackX := pos.X + labelWidth
	trackH := h * 0.5
	trackY := pos.Y + (h-trackH)/2
	rect := Rect{X: trackX, Y: pos.Y, W: sliderWidth, H: h}

	hovered := !disabled && ctx.isHovered(rect)
	changed := false

	set := func(v float32) {
		if step := GetOpt(o, OptStep); step > 0 {
			v = minVal + float32(int((v-minVal)/step+0.5))*step
		}
		v = clampf(v, minVal, maxVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.Input != nil && !disabled {
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				ratio := clampf((ctx.Input.MouseX-trackX-sliderGrabWidth/2)/(sliderWidth-sliderGrabWidth), 0, 1)
				set(minVal + ratio*(maxVal-minVal))
				ctx.WantCaptureMouse = true
			} else {
				state.Dragging = false
			}
		}
		if hovered && ctx.Input.MouseWheelY != 0 {
			step := GetOpt(o, OptStep)
			if step == 0 {
				step = (maxVal - minVal) / 100
			}
			set(*value + ctx.Input.MouseWheelY*step)
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}

	ctx.DrawList.AddRect(trackX, trackY, sliderWidth, trackH, ctx.style.SliderTrackColor)
	if fill := ratio * sliderWidth; fill > 0 {
		ctx.DrawList.AddRect(trackX, trackY, fill, trackH, ctx.style.SliderFillColor)
	}

	grabColor := ctx.style.SliderGrabColor
	switch {
	case disabled:
		grabColor = ctx.style.SliderTrackColor
	case state.Dragging:
		grabColor = ctx.style.SliderGrabActive
	case hovered:
		grabColor = ctx.style.SliderGrabHovered
	}
	grabX := trackX + ratio*(sliderWidth-sliderGrabWidth)
	ctx.DrawList.AddRect(grabX, pos.Y, sliderGrabWidth, h, grabColor)

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.2f"
	}
	var valueText string
	if strings.Contains(format, "%d") {
		valueText = fmt.Sprintf(format, int(*value))
	} else {
		valueText = fmt.Sprintf(format, *value)
	}
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(trackX+sliderWidth+ctx.style.ItemSpacing, pos.Y, valueText, textColor)

	ctx.AdvanceCursor(Vec2{labelWidth + sliderWidth + ctx.style.ItemSpacing + valueWidth, h})
	return changed
}

// ColorSwatch draws a filled square of the given color.
func (ctx *Context) ColorSwatch(rgba [4]float32, size float32) {
	pos := ctx.ItemPos()
	ctx.DrawList.AddRect(pos.X, pos.Y, size, size, RGBAf(rgba[0], rgba[1], rgba[2], 1))
	if a := rgba[3]; a < 1 {
		// Lower half shows the color with its alpha over the panel.
		ctx.DrawList.AddRect(pos.X, pos.Y+size/2, size, size/2, ctx.style.PanelColor)
		ctx.DrawList.AddRect(pos.X, pos.Y+size/2, size, size/2, RGBAf(rgba[0], rgba[1], rgba[2], a))
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, size, size, ctx.style.InputBorderColor, 1)
	ctx.AdvanceCursor(Vec2{size, size})
}

var colorChannels = [4]string{"R", "G", "B", "A"}

// ColorEdit4 draws a swatch and one slider per RGBA channel.
// Channels are clamped to [0, 1]. Returns true if any channel changed.
func (ctx *Context) ColorEdit4(label string, rgba *[4]float32, opts ...Option) bool {
	o := applyOptions(opts)
	changed := false

	ctx.PushID(label)
	ctx.VStack(Gap(SpaceXS))(func() {
		ctx.HStack()(func() {
			ctx.ColorSwatch(*rgba, ctx.LineHeight())
			if label != "" {
				ctx.Text(label)
			}
		})
		for i, ch := range colorChannels {
			if ctx.SliderFloat(ch, &rgba[i], 0, 1, WithDisabled(GetOpt(o, OptDisabled))) {
				changed = true
			}
		}
	})
	ctx.PopID()

	return changed
}
