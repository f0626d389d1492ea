package domain

import (
	"strings"
	"unicode"
)

// MediaExtension is appended to every derived filename regardless of the
// payload's actual encoding.
const MediaExtension = ".mp3"

// FilenameFromTitle maps a display title to a filesystem-safe filename.
// Every non-alphanumeric rune is replaced with an underscore and the fixed
// media extension is appended. Distinct titles that normalize identically
// map to the same filename; the last writer wins.
func FilenameFromTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title) + len(MediaExtension))
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	b.WriteString(MediaExtension)
	return b.String()
}
