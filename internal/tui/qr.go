package tui

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"strings"
)

// finderModules is the width of a QR finder pattern in modules.
const finderModules = 7

var errNotQR = errors.New("image does not look like a QR code")

// qrModules reduces a rendered QR image to its module grid; true is a dark
// module. The module size is taken from the top-left finder pattern, so the
// image must not be rotated.
func qrModules(pngData []byte) ([][]bool, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if dark(img.At(x, y)) {
				minX, minY = min(minX, x), min(minY, y)
				maxX, maxY = max(maxX, x), max(maxY, y)
			}
		}
	}
	if maxX < minX {
		return nil, errNotQR
	}

	run := 0
	for x := minX; x <= maxX && dark(img.At(x, minY)); x++ {
		run++
	}
	if run < finderModules {
		return nil, errNotQR
	}
	module := float64(run) / finderModules
	size := int(math.Round(float64(maxX-minX+1) / module))
	if size < finderModules {
		return nil, errNotQR
	}

	grid := make([][]bool, size)
	for r := range grid {
		grid[r] = make([]bool, size)
		for c := range grid[r] {
			x := minX + int((float64(c)+0.5)*module)
			y := minY + int((float64(r)+0.5)*module)
			grid[r][c] = image.Pt(x, y).In(b) && dark(img.At(x, y))
		}
	}
	return grid, nil
}

// renderQR draws the code with half blocks, two module rows per line, inside
// a quiet zone. Light modules are drawn filled, which scans on the usual dark
// terminal background.
func renderQR(pngData []byte) (string, error) {
	grid, err := qrModules(pngData)
	if err != nil {
		return "", err
	}

	const quiet = 2
	size := len(grid) + 2*quiet
	light := func(r, c int) bool {
		r, c = r-quiet, c-quiet
		if r < 0 || c < 0 || r >= len(grid) || c >= len(grid) {
			return true
		}
		return !grid[r][c]
	}

	var sb strings.Builder
	for r := 0; r < size; r += 2 {
		for c := 0; c < size; c++ {
			top, bottom := light(r, c), r+1 < size && light(r+1, c)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func dark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
