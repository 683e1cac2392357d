package dropdown

// Align is the horizontal alignment of label lines within their area.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// RectDesc describes a filled, optionally bordered rectangle.
type RectDesc struct {
	BgColor     uint32
	BorderColor uint32
	BorderSize  float32 // 0 = no border
}

// LabelDesc describes how a `\n`-delimited label is drawn.
type LabelDesc struct {
	Color     uint32
	Font      Font
	LineSpace float32
	Align     Align
}

// Painter is the rendering collaborator. The control decides where and with
// which style to draw; the painter produces the pixels. Nothing outside clip
// may be touched.
type Painter interface {
	DrawRect(area, clip Rect, d RectDesc)
	DrawLabel(area, clip Rect, d LabelDesc, text string)
}

func rectDesc(s PartStyle) RectDesc {
	return RectDesc{BgColor: s.BgColor, BorderColor: s.BorderColor, BorderSize: s.BorderSize}
}
