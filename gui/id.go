package gui

import "hash/fnv"

// ID identifies a widget for state kept across frames.
// IDs are stable as long as the same widgets are emitted in the same order.
type ID uint64

// GetID generates an ID from a label, scoped by the current ID stack.
// A per-frame counter separates identical labels emitted in a loop.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++

	h := fnv.New64a()
	h.Write([]byte(label))

	// parent (32 bits) + counter (16 bits) + label (16 bits)
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// PushID pushes an ID onto the stack for nested widgets.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the top of the ID stack.
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
