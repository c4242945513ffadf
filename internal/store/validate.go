package store

import (
	"regexp"
	"unicode/utf8"
)

// Field length limits, counted in runes
const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
	MaxCommentLength     = 1000
	MaxTodoLength        = 500
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// TooLong reports whether s has more than max runes
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

// ValidColor reports whether color is a #RRGGBB hex color
func ValidColor(color string) bool {
	return hexColorRegex.MatchString(color)
}
