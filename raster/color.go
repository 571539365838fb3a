package raster

import (
	"fmt"
	"image/color"
)

// ParseHex reads #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (color.NRGBA, error) {
	var c color.NRGBA
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A = 0xFF
	case 5:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x%x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}

		c.A = 0xFF
	case 9:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
		if err != nil {
			return c, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return c, fmt.Errorf("insufficient color fields: %d", n)
		}
	default:
		return c, fmt.Errorf("invalid color, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}

	return c, nil
}
