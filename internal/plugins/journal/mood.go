package journal

import (
	"strings"
	"unicode"
)

// moodWindow bounds how many of the newest entries feed the aggregation.
const moodWindow = 7

// neutralMood is returned when the window yields nothing countable.
const neutralMood = "Neutral"

// CollectiveMood computes the dominant emotion over the user's recent
// entries. The list is newest first, so the window is the first
// moodWindow elements; older entries never influence the result.
//
// Labels are lowercased and trimmed before counting. Sentinel labels from
// failed analysis runs -- anything containing "error", "loading", or
// "missing" -- are skipped. The most frequent label wins; a tie between
// equally frequent labels resolves to the one counted first, which keeps
// the result deterministic (Go map iteration order isn't).
func CollectiveMood(entries []Entry) string {
	if len(entries) == 0 {
		return neutralMood
	}

	recent := entries
	if len(recent) > moodWindow {
		recent = recent[:moodWindow]
	}

	counts := make(map[string]int)
	var firstSeen []string

	for _, entry := range recent {
		for _, emotion := range entry.Emotions {
			label := strings.ToLower(strings.TrimSpace(emotion))
			if label == "" {
				continue
			}
			if strings.Contains(label, "error") ||
				strings.Contains(label, "loading") ||
				strings.Contains(label, "missing") {
				continue
			}
			if _, seen := counts[label]; !seen {
				firstSeen = append(firstSeen, label)
			}
			counts[label]++
		}
	}

	if len(firstSeen) == 0 {
		return neutralMood
	}

	dominant := ""
	max := 0
	for _, label := range firstSeen {
		if counts[label] > max {
			max = counts[label]
			dominant = label
		}
	}

	return capitalize(dominant)
}

// capitalize upper-cases the first rune for display ("joy" -> "Joy").
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
