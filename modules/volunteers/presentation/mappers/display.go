package mappers

import (
	"hash/fnv"
	"strings"
	"time"
	"unicode"
)

// avatarPalette is the fixed color wheel initials avatars draw from.
// The same name always lands on the same color.
var avatarPalette = []string{
	"#e06055", "#f06292", "#ba68c8", "#7986cb",
	"#4fc3f7", "#4db6ac", "#81c784", "#dce775",
	"#ffb74d", "#a1887f", "#90a4ae", "#f57c00",
}

// Initials takes the first letter of the first and last word of a name,
// upper-cased. A single-word name yields one letter.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	first := firstLetter(words[0])
	if len(words) == 1 {
		return first
	}
	return first + firstLetter(words[len(words)-1])
}

func firstLetter(word string) string {
	for _, r := range word {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// AvatarColor hashes the full name onto the palette.
func AvatarColor(name string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return avatarPalette[h.Sum32()%uint32(len(avatarPalette))]
}

// To12Hour converts a 24h "15:04" wire time to "3:04 PM" for display.
// Values that do not parse are shown as-is.
func To12Hour(value string) string {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// DaysWaiting counts whole elapsed days since a registration.
func DaysWaiting(registeredAt, now time.Time) int {
	if registeredAt.IsZero() || now.Before(registeredAt) {
		return 0
	}
	return int(now.Sub(registeredAt).Hours() / 24)
}
