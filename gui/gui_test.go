package gui_test

import (
	"errors"
	"testing"

	"github.com/WaxieDLL/OpenGLPlayground/gui"
)

// mockRenderer records what it was asked to draw.
type mockRenderer struct {
	renderCalls int
	vertices    int
	textures    []uint32
	err         error
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	m.vertices = len(dl.VtxBuffer)
	m.textures = m.textures[:0]
	for _, cmd := range dl.CmdBuffer {
		m.textures = append(m.textures, cmd.TextureID)
	}
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 { return 7 }

func (m *mockRenderer) Resize(width, height int) {}

var display = gui.Vec2{X: 800, Y: 600}

// frame runs one GUI frame with the given input and draw function.
func frame(t *testing.T, ui *gui.GUI, input *gui.InputState, draw func(ctx *gui.Context)) {
	t.Helper()
	ctx := ui.Begin(input, display, 1)
	draw(ctx)
	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	input.Reset()
}

func click(input *gui.InputState, x, y float32) {
	input.SetMousePos(x, y)
	input.SetMouseButton(gui.MouseButtonLeft, true)
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := gui.New(renderer, gui.WithStyle(gui.LightStyle()))
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.Text("Hello World")
		ctx.TextDisabled("disabled")
	})

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	// 19 glyphs, 4 vertices each
	if renderer.vertices != 19*4 {
		t.Errorf("vertices = %d, want %d", renderer.vertices, 19*4)
	}
	for _, tex := range renderer.textures {
		if tex != 7 {
			t.Errorf("text drawn with texture %d, want font texture 7", tex)
		}
	}
	if ui.Style().PanelColor != gui.LightStyle().PanelColor {
		t.Error("WithStyle not applied")
	}
}

func TestEndPropagatesRenderError(t *testing.T) {
	want := errors.New("boom")
	ui := gui.New(&mockRenderer{err: want})
	ui.Begin(gui.NewInputState(), display, 0)
	if err := ui.End(); !errors.Is(err, want) {
		t.Errorf("End() = %v, want %v", err, want)
	}
	// A second End without Begin is a no-op.
	if err := ui.End(); err != nil {
		t.Errorf("second End() = %v", err)
	}
}

func TestCheckbox(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	checked := false

	var changed bool
	frame(t, ui, input, func(ctx *gui.Context) {
		changed = ctx.Checkbox("Wireframe Mode", &checked)
	})
	if changed || checked {
		t.Fatal("checkbox changed without a click")
	}

	click(input, 5, 5)
	frame(t, ui, input, func(ctx *gui.Context) {
		changed = ctx.Checkbox("Wireframe Mode", &checked)
	})
	if !changed || !checked {
		t.Fatalf("click: changed=%v checked=%v, want true/true", changed, checked)
	}

	// Holding the button does not toggle again.
	frame(t, ui, input, func(ctx *gui.Context) {
		changed = ctx.Checkbox("Wireframe Mode", &checked)
	})
	if changed || !checked {
		t.Errorf("held button toggled the checkbox")
	}
}

func TestCheckboxDisabled(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	checked := false

	click(input, 5, 5)
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.Checkbox("x", &checked, gui.WithDisabled(true))
	})
	if checked {
		t.Error("disabled checkbox toggled")
	}
}

func TestSelectable(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	// Without a layout each 17px item is followed by the 4px item spacing,
	// so the second selectable spans y=21..38.
	click(input, 300, 25)
	var first, second bool
	frame(t, ui, input, func(ctx *gui.Context) {
		first = ctx.Selectable("first", true)
		second = ctx.Selectable("second", false)
	})

	if first {
		t.Error("first selectable reported a click below it")
	}
	if !second {
		t.Error("second selectable did not report the click")
	}
}

func TestSliderFloatDrag(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	v := float32(10)

	slider := func(ctx *gui.Context) bool {
		return ctx.SliderFloat("", &v, 0, 100, gui.WithWidth(110))
	}

	var changed bool
	// Grab is 10px wide, so the usable track is 100px starting at x=5.
	click(input, 55, 5)
	frame(t, ui, input, func(ctx *gui.Context) { changed = slider(ctx) })
	if !changed || v != 50 {
		t.Fatalf("press: changed=%v v=%g, want true/50", changed, v)
	}

	// Dragging continues outside the slider and clamps to the range.
	input.SetMousePos(500, 300)
	frame(t, ui, input, func(ctx *gui.Context) { changed = slider(ctx) })
	if v != 100 {
		t.Errorf("drag right: v=%g, want 100", v)
	}
	if !ui.WantCaptureMouse() {
		t.Error("dragging slider did not capture the mouse")
	}

	input.SetMousePos(-50, 300)
	frame(t, ui, input, func(ctx *gui.Context) { slider(ctx) })
	if v != 0 {
		t.Errorf("drag left: v=%g, want 0", v)
	}

	// Release ends the drag; later motion has no effect.
	input.SetMouseButton(gui.MouseButtonLeft, false)
	frame(t, ui, input, func(ctx *gui.Context) { slider(ctx) })
	input.SetMousePos(80, 5)
	frame(t, ui, input, func(ctx *gui.Context) { changed = slider(ctx) })
	if changed || v != 0 {
		t.Errorf("after release: changed=%v v=%g", changed, v)
	}
}

func TestSliderFloatStepAndWheel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	v := float32(0)

	click(input, 39, 5)
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.SliderFloat("", &v, 0, 100, gui.WithWidth(110), gui.WithStep(10))
	})
	if v != 30 {
		t.Errorf("stepped value = %g, want 30", v)
	}

	input.SetMouseButton(gui.MouseButtonLeft, false)
	input.SetMousePos(50, 5)
	input.AddMouseWheel(0, 2)
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.SliderFloat("", &v, 0, 100, gui.WithWidth(110), gui.WithStep(10))
	})
	if v != 50 {
		t.Errorf("after wheel = %g, want 50", v)
	}
}

func TestSliderFloatDisabled(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	v := float32(10)

	click(input, 55, 5)
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.SliderFloat("", &v, 0, 100, gui.WithWidth(110), gui.WithDisabled(true))
	})
	if v != 10 {
		t.Errorf("disabled slider changed value to %g", v)
	}
}

func TestColorEdit4(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	rgba := [4]float32{0.2, 0.4, 0.6, 0.8}

	var changed bool
	frame(t, ui, input, func(ctx *gui.Context) {
		changed = ctx.ColorEdit4("Color", &rgba)
	})
	if changed {
		t.Error("ColorEdit4 changed without input")
	}

	// The swatch row is 13px tall and rows are 2px apart, so the red
	// slider spans y=15..28 with its track starting after the "R" label.
	click(input, 20, 20)
	frame(t, ui, input, func(ctx *gui.Context) {
		changed = ctx.ColorEdit4("Color", &rgba)
	})
	if !changed {
		t.Error("ColorEdit4 did not report the change")
	}

	input.SetMousePos(-100, 20)
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.ColorEdit4("Color", &rgba)
	})
	if rgba[0] != 0 {
		t.Errorf("red = %g, want 0 after dragging left", rgba[0])
	}
	if rgba[1] != 0.4 || rgba[2] != 0.6 || rgba[3] != 0.8 {
		t.Errorf("other channels changed: %v", rgba)
	}
}

func TestPanelCapturesMouse(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	panel := func(ctx *gui.Context) {
		ctx.SetCursorPos(10, 10)
		ctx.Panel("Window", gui.MinWidth(200))(func() {
			ctx.Text("Line 1")
			ctx.Text("Line 2")
		})
	}

	input.SetMousePos(50, 30)
	frame(t, ui, input, panel)
	if !ui.WantCaptureMouse() {
		t.Error("mouse over panel not captured")
	}

	input.SetMousePos(700, 500)
	frame(t, ui, input, panel)
	if ui.WantCaptureMouse() {
		t.Error("mouse away from panel captured")
	}
}

func TestPanelAdvancesCursor(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), display, 0)
	defer ui.End()

	ctx.Panel("P", gui.Padding(8), gui.Gap(4))(func() {
		ctx.Text("a")
		ctx.Text("b")
	})
	// header 13+8, padding 8*2, two 13px lines and one 4px gap
	want := float32(13+8) + 16 + 13*2 + 4
	if got := ctx.GetCursorPos().Y; got != want {
		t.Errorf("cursor Y after panel = %g, want %g", got, want)
	}
}

func TestListBoxClipsHits(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	items := []string{"a", "b", "c"}

	list := func(ctx *gui.Context) int {
		clicked := -1
		ctx.ListBox("objects", 30)(func() {
			for i, item := range items {
				if ctx.Selectable(item, false) {
					clicked = i
				}
			}
		})
		return clicked
	}

	// Item "c" would sit at y=42 but the list is only 30px tall.
	click(input, 10, 45)
	var got int
	frame(t, ui, input, func(ctx *gui.Context) { got = list(ctx) })
	if got != -1 {
		t.Errorf("clicked item %d outside the visible area", got)
	}

	input.SetMouseButton(gui.MouseButtonLeft, false)
	click(input, 10, 10)
	frame(t, ui, input, func(ctx *gui.Context) { got = list(ctx) })
	if got != 0 {
		t.Errorf("clicked item %d, want 0", got)
	}
}

func TestListBoxScrolls(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	items := []string{"a", "b", "c"}

	list := func(ctx *gui.Context) int {
		clicked := -1
		ctx.ListBox("objects", 30)(func() {
			for i, item := range items {
				if ctx.Selectable(item, false) {
					clicked = i
				}
			}
		})
		return clicked
	}

	input.SetMousePos(10, 10)
	input.AddMouseWheel(0, -1)
	frame(t, ui, input, func(ctx *gui.Context) { list(ctx) })

	// With a 1s frame the scroll settles immediately: "c" is now at y=12.
	click(input, 10, 20)
	var got int
	frame(t, ui, input, func(ctx *gui.Context) { got = list(ctx) })
	if got != 2 {
		t.Errorf("clicked item %d after scrolling, want 2", got)
	}
}

func TestLayoutStacks(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	ctx := ui.Begin(gui.NewInputState(), display, 0)
	defer ui.End()

	ctx.VStack(gui.Gap(10))(func() {
		ctx.HStack(gui.Gap(5))(func() {
			ctx.Text("ab")
			if got := ctx.GetCursorPos().X; got != 14 {
				t.Errorf("cursor X after first item = %g, want 14", got)
			}
			ctx.Text("cd")
		})
		if got := ctx.GetCursorPos(); got.X != 0 || got.Y != 13 {
			t.Errorf("cursor after row = %+v, want (0, 13)", got)
		}
		ctx.Text("below")
		if got := ctx.GetCursorPos().Y; got != 13+10+13 {
			t.Errorf("cursor Y = %g, want 36", got)
		}
	})
}

func TestFrameStoreDropsStaleEntries(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	store := gui.NewFrameStore[int](ui.Context())

	frame(t, ui, input, func(ctx *gui.Context) {
		*store.Get(1, 5) = 6
	})
	frame(t, ui, input, func(ctx *gui.Context) {})
	if store.Len() != 1 {
		t.Fatalf("entry dropped one frame after last use")
	}
	frame(t, ui, input, func(ctx *gui.Context) {})
	if store.Len() != 0 {
		t.Errorf("stale entry kept: Len() = %d", store.Len())
	}

	frame(t, ui, input, func(ctx *gui.Context) {
		if got := *store.Get(1, 5); got != 5 {
			t.Errorf("recreated entry = %d, want default 5", got)
		}
	})
}

func TestContextIsStableAcrossFrames(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	before := ui.Context()
	ctx := ui.Begin(gui.NewInputState(), display, 0)
	if err := ui.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if before == nil || ctx != before || ui.Context() != ctx {
		t.Error("Context() does not return the context used by Begin")
	}
}

func TestIDsAreStableAcrossFrames(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	var ids [2][2]gui.ID
	for f := 0; f < 2; f++ {
		frame(t, ui, input, func(ctx *gui.Context) {
			ids[f][0] = ctx.GetID("x")
			ids[f][1] = ctx.GetID("x")
		})
	}
	if ids[0] != ids[1] {
		t.Errorf("IDs changed between frames: %v vs %v", ids[0], ids[1])
	}
	if ids[0][0] == ids[0][1] {
		t.Error("repeated label produced the same ID")
	}
}
