package notation

import "sort"

// Clef pairs the glyph art drawn at the start of the stave with the row each
// note sits on. Row 0 is the top stave line, row 8 the bottom one.
type Clef struct {
	Name string
	Art  []string
	Rows map[string]int
}

// Notes returns every note name the clef can draw, in a stable order.
func (c Clef) Notes() []string {
	names := make([]string, 0, len(c.Rows))
	for name := range c.Rows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Row returns the stave row for a note name.
func (c Clef) Row(name string) (int, bool) {
	row, ok := c.Rows[name]
	return row, ok
}

// Treble is the G clef. Each natural is listed with its sharp and flat
// spellings, which share a row.
var Treble = Clef{
	Name: "treble",
	Art: []string{
		`----|\--`,
		`    |/  `,
		`----|---`,
		`   /|   `,
		`--/ |_ -`,
		`  | | | `,
		`---\|/--`,
		`  o |   `,
		`--\_/---`,
	},
	Rows: map[string]int{
		"F5": 0, "E5": 1, "D5": 2, "C5": 3, "B4": 4, "A4": 5, "G4": 6, "F4": 7, "E4": 8,

		"F#5": 0, "E#5": 1, "D#5": 2, "C#5": 3, "B#4": 4, "A#4": 5, "G#4": 6, "F#4": 7, "E#4": 8,

		"Fb5": 0, "Eb5": 1, "Db5": 2, "Cb5": 3, "Bb4": 4, "Ab4": 5, "Gb4": 6, "Fb4": 7, "Eb4": 8,
	},
}

// Bass is the F clef.
var Bass = Clef{
	Name: "bass",
	Art: []string{
		`--------`,
		`  --\  o`,
		`-/---|--`,
		` \   | o`,
		`-----|--`,
		`    /   `,
		`---/----`,
		`  /     `,
		`--------`,
	},
	Rows: map[string]int{
		"A3": 0, "G3": 1, "F3": 2, "E3": 3, "D3": 4, "C3": 5, "B2": 6, "A2": 7, "G2": 8,

		"A#3": 0, "G#3": 1, "F#3": 2, "E#3": 3, "D#3": 4, "C#3": 5, "B#2": 6, "A#2": 7, "G#2": 8,

		"Ab3": 0, "Gb3": 1, "Fb3": 2, "Eb3": 3, "Db3": 4, "Cb3": 5, "Bb2": 6, "Ab2": 7, "Gb2": 8,
	},
}
