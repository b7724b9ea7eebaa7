package langdetect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// ErrUndetectable is returned when no language could be determined.
var ErrUndetectable = errors.New("language could not be detected")

// Detector returns the ISO 639-1 code of the language text is written in.
type Detector interface {
	DetectLanguage(text string) (string, error)
}

// LinguaDetector detects languages with lingua-go across every language it knows,
// so text in a language outside the supported set is reported as such instead of
// being forced onto the closest supported one.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds the detector. Language models load lazily on first use.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

func (d *LinguaDetector) DetectLanguage(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrUndetectable
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", ErrUndetectable
	}
	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
