package dialog

// Fixed dialog footprint in pixels.
const (
	DialogWidth  = 400
	DialogHeight = 70
)

// Control identifiers carried in WM_COMMAND.
const (
	IDConfirm = 1000
	IDClear   = 1001
)

const (
	// ClassName prefixes every registered window class.
	ClassName = "Win32 Text Box Class"

	FontFace   = "Courier New"
	FontHeight = 14
)

// Bounds is a window rectangle in screen or client coordinates.
type Bounds struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

// Child control layout, relative to the dialog's client area.
var (
	editBounds  = Bounds{X: 10, Y: 10, Width: 250, Height: 20}
	okBounds    = Bounds{X: 270, Y: 10, Width: 50, Height: 20}
	clearBounds = Bounds{X: 330, Y: 10, Width: 50, Height: 20}
)

// Place centers the dialog footprint inside the request rectangle.
//
// Arithmetic wraps to 32 bits, so a rectangle whose origin was passed as a
// negative coordinate reinterpreted as unsigned still lands where expected.
func Place(req Request) Bounds {
	x := int64(req.X) + int64(req.Width/2) - DialogWidth/2
	y := int64(req.Y) + int64(req.Height/2) - DialogHeight/2
	return Bounds{
		X:      int32(x),
		Y:      int32(y),
		Width:  DialogWidth,
		Height: DialogHeight,
	}
}
