//go:build !windows

package main

func getIcon() []byte {
	return iconPNG()
}
