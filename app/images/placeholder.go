package images

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 1024
	placeholderHeight = 1024
	placeholderMargin = 60
)

// placeholderPalettes are vertical gradient stops, cycled per image.
var placeholderPalettes = [][2]color.RGBA{
	{{R: 30, G: 30, B: 60, A: 255}, {R: 90, G: 40, B: 120, A: 255}},
	{{R: 10, G: 60, B: 120, A: 255}, {R: 10, G: 140, B: 200, A: 255}},
	{{R: 20, G: 120, B: 80, A: 255}, {R: 40, G: 200, B: 160, A: 255}},
	{{R: 120, G: 40, B: 40, A: 255}, {R: 220, G: 80, B: 80, A: 255}},
	{{R: 100, G: 100, B: 100, A: 255}, {R: 40, G: 40, B: 40, A: 255}},
}

// Placeholder renders gradient PNGs with the prompt text drawn over
// them, for offline runs where the image API is not called.
type Placeholder struct {
	next int
}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

// Generate renders a placeholder PNG for the given prompt. Never calls
// the network; always succeeds.
func (p *Placeholder) Generate(_ context.Context, prompt string) ([]byte, error) {
	idx := p.next
	p.next++

	img := gradientBackground(idx)

	words := strings.Fields(prompt)
	title := "FPL"
	if len(words) > 0 {
		end := len(words)
		if end > 8 {
			end = 8
		}
		title = strings.Join(words[:end], " ")
	}

	body := "Offline visual placeholder."
	if prompt != "" {
		runes := []rune(strings.Join(words, " "))
		if len(runes) > 250 {
			runes = runes[:250]
		}
		body = string(runes)
	}

	face := basicfont.Face7x13
	maxWidth := placeholderWidth - 2*placeholderMargin
	titleLines := wrapText(title, face, maxWidth)
	bodyLines := wrapText(body, face, maxWidth)

	lineHeight := face.Metrics().Height.Ceil()
	titleBlock := len(titleLines) * (lineHeight + 12)
	bodyBlock := len(bodyLines) * (lineHeight + 8)
	y := (placeholderHeight - titleBlock - 24 - bodyBlock) / 2
	if y < placeholderMargin {
		y = placeholderMargin
	}

	y = drawCentered(img, titleLines, face, y, lineHeight+12, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	y += 24
	drawCentered(img, bodyLines, face, y, lineHeight+8, color.RGBA{R: 240, G: 240, B: 240, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gradientBackground(idx int) *image.RGBA {
	palette := placeholderPalettes[idx%len(placeholderPalettes)]
	top, bottom := palette[0], palette[1]

	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	for y := 0; y < placeholderHeight; y++ {
		ratio := float64(y) / float64(placeholderHeight-1)
		c := color.RGBA{
			R: uint8(float64(top.R)*(1-ratio) + float64(bottom.R)*ratio),
			G: uint8(float64(top.G)*(1-ratio) + float64(bottom.G)*ratio),
			B: uint8(float64(top.B)*(1-ratio) + float64(bottom.B)*ratio),
			A: 255,
		}
		for x := 0; x < placeholderWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func wrapText(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current []string
	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

func drawCentered(img *image.RGBA, lines []string, face font.Face, y, lineHeight int, fill color.RGBA) int {
	shadow := image.NewUniform(color.RGBA{A: 255})
	text := image.NewUniform(fill)
	ascent := face.Metrics().Ascent.Ceil()

	for _, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		x := (placeholderWidth - width) / 2

		drawer := &font.Drawer{
			Dst:  img,
			Src:  shadow,
			Face: face,
			Dot:  fixed.P(x+1, y+ascent+1),
		}
		drawer.DrawString(line)

		drawer.Src = text
		drawer.Dot = fixed.P(x, y+ascent)
		drawer.DrawString(line)

		y += lineHeight
	}
	return y
}
