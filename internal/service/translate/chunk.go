package translate

import "unicode/utf8"

// charsPerToken is the rough number of characters per model token.
const charsPerToken = 4

// EstimateTokens estimates the token count for a text.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	tokens := n / charsPerToken
	if tokens == 0 {
		tokens = 1
	}
	return tokens
}

// Truncate cuts text to roughly maxTokens tokens. Over-long fields are
// translated in part.
func Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return text
	}
	limit := maxTokens * charsPerToken
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit])
}

// ChunkByTokens splits texts into consecutive chunks whose estimated token
// total stays under maxTokens. Texts are never split; one that alone exceeds
// the budget gets its own chunk. Concatenating the chunks yields texts again.
func ChunkByTokens(texts []string, maxTokens int) [][]string {
	if len(texts) == 0 {
		return nil
	}
	if maxTokens <= 0 {
		return [][]string{texts}
	}

	var chunks [][]string
	var current []string
	currentTokens := 0

	for _, text := range texts {
		tokens := EstimateTokens(text)

		if tokens > maxTokens {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current, currentTokens = nil, 0
			}
			chunks = append(chunks, []string{text})
			continue
		}

		if currentTokens+tokens > maxTokens && len(current) > 0 {
			chunks = append(chunks, current)
			current, currentTokens = nil, 0
		}
		current = append(current, text)
		currentTokens += tokens
	}

	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
