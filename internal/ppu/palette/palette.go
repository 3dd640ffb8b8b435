// Package palette maps the 2-bit colour indices produced by tiles and
// objects onto one of the four shades of the DMG LCD.
package palette

// Shade is one of the four shades the DMG LCD can display.
type Shade uint8

const (
	// White is the lightest shade.
	White Shade = iota
	// LightGrey is the second lightest shade.
	LightGrey
	// DarkGrey is the second darkest shade.
	DarkGrey
	// Black is the darkest shade.
	Black
)

// Palette maps a colour index (0-3) to a Shade. It is derived from
// one of the palette registers (BGP, OBP0, OBP1).
type Palette struct {
	Shades [4]Shade
	raw    uint8
}

// ByteToPalette creates a new palette from a byte:
//
//	Bit 7-6: shade for colour 3
//	Bit 5-4: shade for colour 2
//	Bit 3-2: shade for colour 1
//	Bit 1-0: shade for colour 0
func ByteToPalette(b byte) Palette {
	var p Palette
	p.Shades[0] = Shade(b & 0x03)
	p.Shades[1] = Shade((b >> 2) & 0x03)
	p.Shades[2] = Shade((b >> 4) & 0x03)
	p.Shades[3] = Shade((b >> 6) & 0x03)
	p.raw = b
	return p
}

// Raw returns the byte the palette was created from.
func (p Palette) Raw() byte {
	return p.raw
}

// GetShade returns the shade for the given colour index.
func (p Palette) GetShade(index uint8) Shade {
	return p.Shades[index&0x3]
}
