// pkg/utils/color.go
package utils

import (
	"fmt"
	"image/color"
	"strings"
)

// HexColor форматирует цвет в виде #RRGGBB (альфа-канал не сохраняется).
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor разбирает строку вида #RRGGBB или #RGB.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xFF}
	if !strings.HasPrefix(s, "#") {
		return c, fmt.Errorf("color %q must start with '#'", s)
	}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("unexpected length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("failed to parse color %q: %w", s, err)
	}
	return c, nil
}
