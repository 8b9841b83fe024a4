package dialog

import "testing"

func TestPlace(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Bounds
	}{
		{
			name: "game window",
			req:  Request{X: 100, Y: 100, Width: 800, Height: 600},
			want: Bounds{X: 300, Y: 365, Width: 400, Height: 70},
		},
		{
			name: "full hd screen",
			req:  Request{Width: 1920, Height: 1080},
			want: Bounds{X: 760, Y: 505, Width: 400, Height: 70},
		},
		{
			name: "odd size rounds down",
			req:  Request{X: 1, Y: 1, Width: 401, Height: 71},
			want: Bounds{X: 1, Y: 1, Width: 400, Height: 70},
		},
		{
			name: "empty rectangle",
			req:  Request{},
			want: Bounds{X: -200, Y: -35, Width: 400, Height: 70},
		},
		{
			name: "monitor left of primary",
			req:  Request{X: uint32(0xFFFFF880), Y: 0, Width: 1920, Height: 1080}, // x = -1920
			want: Bounds{X: -1160, Y: 505, Width: 400, Height: 70},
		},
	}

	for _, tt := range tests {
		if got := Place(tt.req); got != tt.want {
			t.Errorf("%s: Place(%+v) = %+v, want %+v", tt.name, tt.req, got, tt.want)
		}
	}
}

func TestPlaceMatchesFormula(t *testing.T) {
	for x := uint32(0); x < 3000; x += 37 {
		for w := uint32(0); w < 3000; w += 53 {
			req := Request{X: x, Y: x / 2, Width: w, Height: w / 3}
			got := Place(req)
			wantX := int32(x) + int32(w/2) - 200
			wantY := int32(x/2) + int32(w/3/2) - 35
			if got.X != wantX || got.Y != wantY || got.Width != DialogWidth || got.Height != DialogHeight {
				t.Fatalf("Place(%+v) = %+v, want (%d, %d, 400, 70)", req, got, wantX, wantY)
			}
		}
	}
}

func TestControlsFitInsideDialog(t *testing.T) {
	for _, b := range []Bounds{editBounds, okBounds, clearBounds} {
		if b.X+b.Width > DialogWidth || b.Y+b.Height > DialogHeight {
			t.Errorf("control %+v does not fit in %dx%d", b, DialogWidth, DialogHeight)
		}
	}
	if editBounds.X+editBounds.Width > okBounds.X || okBounds.X+okBounds.Width > clearBounds.X {
		t.Errorf("controls overlap: edit=%+v ok=%+v clear=%+v", editBounds, okBounds, clearBounds)
	}
}
