package symbol

import "testing"

func TestCatalogSize(t *testing.T) {
	all := All()
	if len(all) != 37 {
		t.Fatalf("Expected 37 symbols, got %d", len(all))
	}

	seen := make(map[Symbol]bool)
	for _, s := range all {
		if seen[s] {
			t.Errorf("Duplicate symbol %s", s)
		}
		seen[s] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = 'X'
	if All()[0] != 'ㄅ' {
		t.Error("Mutating All() result leaked into catalog")
	}
}

func TestCategories(t *testing.T) {
	initials, finals := 0, 0
	for _, s := range All() {
		switch CategoryOf(s) {
		case Initial:
			initials++
		case Final:
			finals++
		}
	}
	if initials != 21 || finals != 16 {
		t.Errorf("Expected 21 initials and 16 finals, got %d/%d", initials, finals)
	}

	if CategoryOf('ㄙ') != Initial {
		t.Error("ㄙ should be an initial")
	}
	if CategoryOf('ㄧ') != Final {
		t.Error("ㄧ should be a final")
	}
}

func TestIndex(t *testing.T) {
	if i, ok := Index('ㄅ'); !ok || i != 1 {
		t.Errorf("Index(ㄅ) = %d, %v", i, ok)
	}
	if i, ok := Index('ㄦ'); !ok || i != 37 {
		t.Errorf("Index(ㄦ) = %d, %v", i, ok)
	}
	if _, ok := Index('a'); ok {
		t.Error("Index should reject non-catalog symbols")
	}
	if At(0) != 'ㄅ' || At(37) != None || At(-1) != None {
		t.Error("At bounds handling wrong")
	}
}

func TestConfusableWith(t *testing.T) {
	for _, s := range All() {
		for n := 1; n <= 3; n++ {
			got := ConfusableWith(s, n)
			if len(got) != n {
				t.Fatalf("ConfusableWith(%s, %d) returned %d symbols", s, n, len(got))
			}
			seen := make(map[Symbol]bool)
			for _, c := range got {
				if c == s {
					t.Errorf("ConfusableWith(%s) contains input", s)
				}
				if !Valid(c) {
					t.Errorf("ConfusableWith(%s) returned non-catalog %q", s, c)
				}
				if seen[c] {
					t.Errorf("ConfusableWith(%s) returned duplicate %s", s, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestConfusableWithIsDeterministic(t *testing.T) {
	a := ConfusableWith('ㄅ', 2)
	b := ConfusableWith('ㄅ', 2)
	if a[0] != b[0] || a[1] != b[1] {
		t.Errorf("Expected stable lookups, got %v and %v", a, b)
	}
	if a[0] != 'ㄆ' || a[1] != 'ㄉ' {
		t.Errorf("Expected [ㄆ ㄉ], got %v", a)
	}
}

func TestConfusableWithTopUp(t *testing.T) {
	got := ConfusableWith('ㄅ', 6)
	if len(got) != 6 {
		t.Fatalf("Expected 6 symbols, got %d", len(got))
	}
	for _, c := range got[3:] {
		if CategoryOf(c) != Initial {
			t.Errorf("Top-up symbol %s should share the initial category", c)
		}
	}
}

func TestConfusableWithUnknown(t *testing.T) {
	if got := ConfusableWith('a', 2); got != nil {
		t.Errorf("Expected nil for unknown symbol, got %v", got)
	}
	if got := ConfusableWith('ㄅ', 0); got != nil {
		t.Errorf("Expected nil for n=0, got %v", got)
	}
}

func TestPalette(t *testing.T) {
	if len(Palette(Initial)) == 0 || len(Palette(Final)) == 0 {
		t.Fatal("Palettes must not be empty")
	}
	if Palette(Initial)[0] == Palette(Final)[0] {
		t.Error("Initial and final palettes should differ")
	}
}
