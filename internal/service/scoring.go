package service

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"kvtranslate/backend/internal/model"
)

// suspiciousBelow is the trimmed length under which a translated value is flagged.
const suspiciousBelow = 2

// Confidence is the length ratio of the trimmed translation to the trimmed
// original, clamped to [0,1] and rounded to two decimals. It is a heuristic,
// not a calibrated quality score.
func Confidence(original, translated string) float64 {
	t := utf8.RuneCountInString(strings.TrimSpace(translated))
	o := max(utf8.RuneCountInString(strings.TrimSpace(original)), 1)
	ratio := float64(t) / float64(o)
	return round2(min(max(ratio, 0), 1))
}

// IsSuspicious reports whether a translated value is empty or a single character.
func IsSuspicious(translated string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(translated)) < suspiciousBelow
}

// AverageConfidence returns the rounded mean, or 0 for no scores.
func AverageConfidence(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return round2(sum / float64(len(scores)))
}

// ScoreDocument builds one row per pair and the document summary. keys and
// values must be aligned with pairs.
func ScoreDocument(fileName string, pairs []model.ExtractedPair, keys, values []string) ([]model.TranslationRow, model.DocumentResult) {
	rows := make([]model.TranslationRow, len(pairs))
	scores := make([]float64, len(pairs))
	suspicious := 0

	for i, p := range pairs {
		conf := Confidence(p.Value, values[i])
		flagged := IsSuspicious(values[i])
		if flagged {
			suspicious++
		}
		scores[i] = conf
		rows[i] = model.TranslationRow{
			SourceDocument:  fileName,
			OriginalKey:     p.Key,
			OriginalValue:   p.Value,
			TranslatedKey:   keys[i],
			TranslatedValue: values[i],
			Confidence:      conf,
			Suspicious:      flagged,
		}
	}

	return rows, model.DocumentResult{
		FileName:               fileName,
		Status:                 model.DocumentTranslated,
		TotalPairs:             len(pairs),
		SuspiciousTranslations: suspicious,
		AverageConfidence:      AverageConfidence(scores),
	}
}

// round2 rounds the exact binary value of x to two decimals, ties to even.
// Scaling by 100 first would turn values such as 0.075 into false ties.
func round2(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return r
}
