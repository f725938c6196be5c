package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateName fuzzes TruncateName with random names and widths.
func FuzzTruncateName(f *testing.F) {
	f.Add("repository", 5)
	f.Add("", 0)
	f.Add("日本語", 4)
	f.Add("a", -1)

	f.Fuzz(func(t *testing.T, name string, maxWidth int) {
		got := TruncateName(name, maxWidth)
		if maxWidth > 3 && utf8.RuneCountInString(got) > maxWidth {
			t.Errorf("TruncateName(%q, %d) = %q exceeds width", name, maxWidth, got)
		}
	})
}
