package gui_test

import (
	"testing"

	"github.com/WaxieDLL/OpenGLPlayground/gui"
)

func TestDrawListPool(t *testing.T) {
	dl := gui.AcquireDrawList()
	dl.AddRect(0, 0, 100, 100, gui.ColorWhite)
	gui.ReleaseDrawList(dl)

	dl2 := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl2)
	if len(dl2.VtxBuffer) != 0 || len(dl2.IdxBuffer) != 0 || len(dl2.CmdBuffer) != 0 {
		t.Error("acquired DrawList is not empty")
	}
}

func TestDrawListAddRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 20, 30, 40, gui.ColorRed)
	dl.AddRect(0, 0, 5, 5, gui.ColorTransparent) // skipped
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("got %d vertices, %d indices", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[2].Pos != [2]float32{40, 60} {
		t.Errorf("bottom-right = %v", dl.VtxBuffer[2].Pos)
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("commands = %+v", dl.CmdBuffer)
	}
}

func TestDrawListTextureBatching(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)
	dl.FontTexture = 3
	atlas := gui.DefaultFontAtlas()

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.AddText(0, 0, "ab", gui.ColorWhite, atlas, 1)
	dl.AddText(0, 20, "c", gui.ColorWhite, atlas, 1)
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.Finalize()

	want := []struct {
		tex   uint32
		elems uint32
	}{
		{0, 6},
		{3, 18},
		{0, 6},
	}
	if len(dl.CmdBuffer) != len(want) {
		t.Fatalf("commands = %+v", dl.CmdBuffer)
	}
	for i, w := range want {
		cmd := dl.CmdBuffer[i]
		if cmd.TextureID != w.tex || cmd.ElemCount != w.elems {
			t.Errorf("cmd %d = tex %d elems %d, want tex %d elems %d", i, cmd.TextureID, cmd.ElemCount, w.tex, w.elems)
		}
	}
	// Indices are relative to each command's vertex offset.
	if dl.CmdBuffer[1].VertexOffset != 4 || dl.IdxBuffer[dl.CmdBuffer[1].IndexOffset] != 0 {
		t.Errorf("text command offsets = %+v", dl.CmdBuffer[1])
	}
}

func TestDrawListClipRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(0, 0, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	dl.PopClipRect() // extra pop is ignored
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %+v", dl.CmdBuffer)
	}
	if got := dl.CmdBuffer[1].ClipRect; got != [4]float32{5, 5, 50, 50} {
		t.Errorf("clip = %v", got)
	}
}

func TestDrawListInsertRect(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(10, 10, 5, 5, gui.ColorRed)
	dl.InsertRect(0, 0, 100, 100, gui.ColorBlue)
	dl.AddRect(20, 20, 5, 5, gui.ColorGreen)
	dl.Finalize()

	if len(dl.VtxBuffer) != 12 {
		t.Fatalf("vertices = %d, want 12", len(dl.VtxBuffer))
	}
	if dl.VtxBuffer[0].Color != gui.ColorBlue {
		t.Error("inserted rect is not first")
	}
	first := dl.CmdBuffer[0]
	if first.ElemCount != 6 || first.VertexOffset != 0 {
		t.Errorf("background command = %+v", first)
	}
	rest := dl.CmdBuffer[1]
	if rest.VertexOffset != 4 || rest.IndexOffset != 6 || rest.ElemCount != 12 {
		t.Errorf("content command = %+v", rest)
	}
}

func TestColorPacking(t *testing.T) {
	c := gui.RGBA(1, 2, 3, 4)
	r, g, b, a := gui.UnpackRGBA(c)
	if r != 1 || g != 2 || b != 3 || a != 4 {
		t.Errorf("UnpackRGBA = %d %d %d %d", r, g, b, a)
	}
	if got := gui.RGBAf(1, 0, 0, 1); got != gui.ColorRed {
		t.Errorf("RGBAf(1,0,0,1) = %#x, want %#x", got, gui.ColorRed)
	}
	if got := gui.RGBAf(2, -1, 0, 1); got != gui.ColorRed {
		t.Errorf("RGBAf clamps: got %#x", got)
	}
}
