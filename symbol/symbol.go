// Package symbol holds the fixed Zhuyin (Bopomofo) catalog and its static metadata
package symbol

// Symbol is one Zhuyin glyph
type Symbol rune

// None is the zero Symbol, never part of the catalog
const None Symbol = 0

func (s Symbol) String() string {
	if s == None {
		return ""
	}
	return string(rune(s))
}

// Category splits the catalog into consonant-like initials and vowel-like finals
type Category uint8

const (
	Initial Category = iota
	Final
)

func (c Category) String() string {
	if c == Initial {
		return "initial"
	}
	return "final"
}

// catalog order matches the numbering of the bundled audio clips
var catalog = [...]Symbol{
	'ㄅ', 'ㄆ', 'ㄇ', 'ㄈ', 'ㄉ', 'ㄊ', 'ㄋ', 'ㄌ', 'ㄍ', 'ㄎ', 'ㄏ',
	'ㄐ', 'ㄑ', 'ㄒ', 'ㄓ', 'ㄔ', 'ㄕ', 'ㄖ', 'ㄗ', 'ㄘ', 'ㄙ',
	'ㄧ', 'ㄨ', 'ㄩ', 'ㄚ', 'ㄛ', 'ㄜ', 'ㄝ', 'ㄞ', 'ㄟ', 'ㄠ', 'ㄡ',
	'ㄢ', 'ㄣ', 'ㄤ', 'ㄥ', 'ㄦ',
}

// Count is the catalog size
const Count = len(catalog)

// initialCount is the number of leading catalog entries that are initials
const initialCount = 21

var indexOf = func() map[Symbol]int {
	m := make(map[Symbol]int, Count)
	for i, s := range catalog {
		m[s] = i
	}
	return m
}()

// All returns the catalog in canonical order, caller owns the slice
func All() []Symbol {
	out := make([]Symbol, Count)
	copy(out, catalog[:])
	return out
}

// At returns the i-th catalog symbol (0-based), None when out of range
func At(i int) Symbol {
	if i < 0 || i >= Count {
		return None
	}
	return catalog[i]
}

// Valid reports catalog membership
func Valid(s Symbol) bool {
	_, ok := indexOf[s]
	return ok
}

// Index returns the 1-based catalog position used for audio clip names
func Index(s Symbol) (int, bool) {
	i, ok := indexOf[s]
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// CategoryOf returns the category of s; unknown symbols report Final
func CategoryOf(s Symbol) Category {
	if i, ok := indexOf[s]; ok && i < initialCount {
		return Initial
	}
	return Final
}

// Palettes as 0xRRGGBB, cool for initials and warm for finals
var (
	coolPalette = []uint32{0x4169E1, 0x1E90FF, 0x00BFFF, 0x8A2BE2, 0x9370DB}
	warmPalette = []uint32{0xFF4500, 0xFF6347, 0xFF8C00, 0xFFA500, 0xFF7F50}
)

// Palette returns the balloon colors available to a category
func Palette(c Category) []uint32 {
	if c == Initial {
		return coolPalette
	}
	return warmPalette
}
