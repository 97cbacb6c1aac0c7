package core

import "time"

const (
	// ChunkWidth is the number of characters carried by one stream delta.
	ChunkWidth = 24
	// ChunkDelay paces deltas so a client renders them progressively.
	ChunkDelay = 50 * time.Millisecond
)

// Split cuts s into consecutive pieces of width characters (runes); the
// last piece may be shorter.  Joining the pieces gives back s.  An empty s
// yields a single empty piece so a stream always carries at least one delta.
func Split(s string, width int) []string {
	if width <= 0 {
		width = ChunkWidth
	}
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	parts := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}
