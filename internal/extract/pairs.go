// Package extract turns PDF documents into ordered key/value pairs.
package extract

import (
	"strings"

	"kvtranslate/backend/internal/model"
)

// Delimiter separates a key from the start of its value on a line.
const Delimiter = ":"

// Pairs splits text into key/value pairs. A line containing Delimiter starts a
// new pair; any other line continues the pending value on a new line.
func Pairs(text string) []model.ExtractedPair {
	pairs := []model.ExtractedPair{}
	var key, value string
	pending := false

	for _, line := range strings.Split(text, "\n") {
		before, after, found := strings.Cut(line, Delimiter)
		if !found {
			value += "\n" + line
			continue
		}
		if pending {
			pairs = append(pairs, finalize(key, value))
		}
		key, value, pending = before, after, true
	}
	if pending {
		pairs = append(pairs, finalize(key, value))
	}
	return pairs
}

func finalize(key, value string) model.ExtractedPair {
	return model.ExtractedPair{
		Key:   strings.TrimSpace(key),
		Value: strings.TrimSpace(value),
	}
}
