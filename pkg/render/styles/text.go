package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.5
	fontCharWidth   = 0.6
	fontSizeMin     = 8.0
	fontSizeMax     = 28.0
)

// FontSize picks a font size that fits the label inside the block.
func FontSize(b Block) float64 {
	n := max(1, len(b.Label))
	byHeight := b.H * fontHeightRatio
	byWidth := b.W * 0.8 / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// EscapeXML escapes s for use in SVG text and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
