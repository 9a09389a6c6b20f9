package server

import (
	"crypto/rand"
	mrand "math/rand/v2"
)

func newRoomCode() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "AAAAAA"
	}
	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf)
}

// hostColor is assigned to the game creator; joiners draw from the palette.
const hostColor = "#6366F1"

var playerPalette = []string{
	"#EF4444",
	"#10B981",
	"#F59E0B",
	"#8B5CF6",
	"#EC4899",
	"#06B6D4",
}

// pickPlayerColor returns the first palette color no current player uses,
// falling back to a uniformly random palette color when all are taken.
func pickPlayerColor(usedColors []string) string {
	used := make(map[string]struct{}, len(usedColors))
	for _, color := range usedColors {
		used[color] = struct{}{}
	}
	for _, color := range playerPalette {
		if _, taken := used[color]; !taken {
			return color
		}
	}
	return playerPalette[mrand.IntN(len(playerPalette))]
}

// newHiddenNumber draws the ground-truth value for a situation, independent
// of the position the submitting player chose.
func newHiddenNumber() int {
	return mrand.IntN(101)
}
