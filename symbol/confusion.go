package symbol

// confusables lists, per symbol, the glyphs children most often mix it up with,
// ordered from most to least similar (shape first, then sound)
var confusables = map[Symbol][]Symbol{
	'ㄅ': {'ㄆ', 'ㄉ', 'ㄇ'},
	'ㄆ': {'ㄅ', 'ㄊ', 'ㄈ'},
	'ㄇ': {'ㄈ', 'ㄋ', 'ㄅ'},
	'ㄈ': {'ㄇ', 'ㄆ', 'ㄏ'},
	'ㄉ': {'ㄊ', 'ㄅ', 'ㄌ'},
	'ㄊ': {'ㄉ', 'ㄆ', 'ㄋ'},
	'ㄋ': {'ㄌ', 'ㄇ', 'ㄊ'},
	'ㄌ': {'ㄋ', 'ㄉ', 'ㄖ'},
	'ㄍ': {'ㄎ', 'ㄏ', 'ㄐ'},
	'ㄎ': {'ㄍ', 'ㄏ', 'ㄑ'},
	'ㄏ': {'ㄈ', 'ㄎ', 'ㄍ'},
	'ㄐ': {'ㄑ', 'ㄓ', 'ㄗ'},
	'ㄑ': {'ㄐ', 'ㄔ', 'ㄘ'},
	'ㄒ': {'ㄕ', 'ㄙ', 'ㄑ'},
	'ㄓ': {'ㄗ', 'ㄐ', 'ㄔ'},
	'ㄔ': {'ㄘ', 'ㄑ', 'ㄓ'},
	'ㄕ': {'ㄙ', 'ㄒ', 'ㄖ'},
	'ㄖ': {'ㄌ', 'ㄕ', 'ㄦ'},
	'ㄗ': {'ㄓ', 'ㄐ', 'ㄘ'},
	'ㄘ': {'ㄔ', 'ㄑ', 'ㄗ'},
	'ㄙ': {'ㄕ', 'ㄒ', 'ㄘ'},
	'ㄧ': {'ㄩ', 'ㄝ', 'ㄟ'},
	'ㄨ': {'ㄩ', 'ㄛ', 'ㄡ'},
	'ㄩ': {'ㄧ', 'ㄨ', 'ㄝ'},
	'ㄚ': {'ㄛ', 'ㄜ', 'ㄞ'},
	'ㄛ': {'ㄜ', 'ㄚ', 'ㄡ'},
	'ㄜ': {'ㄛ', 'ㄝ', 'ㄚ'},
	'ㄝ': {'ㄜ', 'ㄟ', 'ㄧ'},
	'ㄞ': {'ㄟ', 'ㄚ', 'ㄠ'},
	'ㄟ': {'ㄞ', 'ㄝ', 'ㄧ'},
	'ㄠ': {'ㄡ', 'ㄞ', 'ㄛ'},
	'ㄡ': {'ㄠ', 'ㄛ', 'ㄨ'},
	'ㄢ': {'ㄣ', 'ㄤ', 'ㄚ'},
	'ㄣ': {'ㄢ', 'ㄥ', 'ㄦ'},
	'ㄤ': {'ㄥ', 'ㄢ', 'ㄠ'},
	'ㄥ': {'ㄤ', 'ㄣ', 'ㄦ'},
	'ㄦ': {'ㄜ', 'ㄖ', 'ㄣ'},
}

// ConfusableWith returns n distinct symbols similar to s, never s itself
// Rows shorter than n are topped up with same-category symbols in catalog order
// Returns nil for unknown symbols or n <= 0
func ConfusableWith(s Symbol, n int) []Symbol {
	if n <= 0 || !Valid(s) {
		return nil
	}

	out := make([]Symbol, 0, n)
	seen := map[Symbol]bool{s: true}
	for _, c := range confusables[s] {
		if len(out) == n {
			return out
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	cat := CategoryOf(s)
	for _, c := range catalog {
		if len(out) == n {
			break
		}
		if !seen[c] && CategoryOf(c) == cat {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
