package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

var (
	iconFrame  = color.RGBA{0x2d, 0x3e, 0x50, 0xff}
	iconField  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	iconCursor = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
)

// drawIcon paints a text field with a caret.
func drawIcon() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	for y := 6; y < 26; y++ {
		for x := 1; x < 31; x++ {
			c := iconField
			if y < 8 || y > 23 || x < 3 || x > 28 {
				c = iconFrame
			}
			img.Set(x, y, c)
		}
	}
	for y := 10; y < 22; y++ {
		img.Set(7, y, iconCursor)
		img.Set(8, y, iconCursor)
	}
	return img
}

func iconPNG() []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, drawIcon()); err != nil {
		return nil
	}
	return buf.Bytes()
}
