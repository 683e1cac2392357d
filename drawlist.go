package dropdown

import (
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Vertex represents a single vertex in the draw list.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are split whenever the texture or the clip rectangle changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame. It implements Painter;
// text is drawn from the backend's 8x8 bitmap font texture.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	// FontTexture is the texture holding the bitmap font atlas.
	FontTexture uint32

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9} // Very large default clip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack, intersected with
// the current one.
func (dl *DrawList) PushClipRect(r Rect) {
	cur := dl.currentClip
	x1, y1 := maxf(r.X, cur[0]), maxf(r.Y, cur[1])
	x2, y2 := minf(r.Right(), cur[2]), minf(r.Bottom(), cur[3])
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	dl.clipStack = append(dl.clipStack, cur)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addVertices adds vertices and returns the starting index.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	dl.ensureCommand()
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.SetTexture(0)

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 || thickness <= 0 {
		return
	}

	dl.AddRect(x, y, w, thickness, color)                                   // top
	dl.AddRect(x, y+h-thickness, w, thickness, color)                       // bottom
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)             // left
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color) // right
}

// AddText draws a single line at the specified position using cells of
// cw x ch pixels. Wide runes take two cells.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, cw, ch float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	dl.SetTexture(dl.FontTexture)

	px := x
	for _, r := range text {
		cells := float32(runewidth.RuneWidth(r))
		if cells == 0 {
			continue
		}

		// 16x6 grid of 8x8 characters for ASCII 32-127 in a 128x48 texture
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}
		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)
		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		w := cw * cells
		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + w, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + w, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
		px += w
	}
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font (ASCII 32-127 only).
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
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

// DrawRect implements Painter.
func (dl *DrawList) DrawRect(area, clip Rect, d RectDesc) {
	dl.PushClipRect(clip)
	defer dl.PopClipRect()

	dl.AddRect(area.X, area.Y, area.W, area.H, d.BgColor)
	dl.AddRectOutline(area.X, area.Y, area.W, area.H, d.BorderColor, d.BorderSize)
}

// DrawLabel implements Painter. Lines are laid out top-down from area.Y;
// lines entirely outside clip are skipped.
func (dl *DrawList) DrawLabel(area, clip Rect, d LabelDesc, text string) {
	f := d.Font
	if f == nil {
		f = DefaultFont()
	}
	cw, ch := cellSize(f)

	dl.PushClipRect(clip)
	defer dl.PopClipRect()

	lines := strings.Split(text, "\n")
	clipper := NewLineClipper(len(lines), f.LineHeight()+d.LineSpace, area.Y, clip)
	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
		line := lines[i]
		x := area.X
		switch d.Align {
		case AlignCenter:
			x += (area.W - f.TextWidth(line)) / 2
		case AlignRight:
			x += area.W - f.TextWidth(line)
		}
		dl.AddText(x, clipper.LineY(i, area.Y), line, d.Color, cw, ch)
	}
}

// cellSize returns the glyph cell used to draw text measured by f.
func cellSize(f Font) (cw, ch float32) {
	if cf, ok := f.(CellFont); ok {
		return cf.CellWidth * cf.scale(), cf.LineHeight()
	}
	// Proportional faces are approximated with square cells of the line height.
	h := f.LineHeight()
	return h * 7 / 13, h
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
