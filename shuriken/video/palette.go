package video

// Palette is a shared table of colors referenced by indexed tile and sprite
// data.
type Palette struct {
	Name    string
	Entries []Color16
}

// PaletteWithOffset selects a window of a palette. Pixel index i resolves to
// Entries[Offset+i]; index 0 is never drawn.
type PaletteWithOffset struct {
	Palette *Palette
	Offset  int
}

func NewPalette(name string, entries ...Color16) *Palette {
	return &Palette{Name: name, Entries: entries}
}

// Window returns the palette entries visible through the offset, or nil if
// there is no palette.
func (p *PaletteWithOffset) Window() []Color16 {
	if p == nil || p.Palette == nil {
		return nil
	}
	return p.Palette.Entries[p.Offset:]
}
