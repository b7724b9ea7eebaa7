package langdetect

import (
	"strings"

	"kvtranslate/backend/internal/logger"
)

type OutcomeKind int

const (
	Supported OutcomeKind = iota
	Unsupported
	DetectionFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Supported:
		return "supported"
	case Unsupported:
		return "unsupported"
	default:
		return "detection_failed"
	}
}

// Outcome is the result of resolving a text sample. Code is set for Supported
// and Unsupported, Tag only for Supported, Err only for DetectionFailed.
type Outcome struct {
	Kind OutcomeKind
	Code string
	Tag  string
	Err  error
}

// OK reports whether the language can be translated.
func (o Outcome) OK() bool {
	return o.Kind == Supported
}

// Resolver combines a Detector with the configured LanguageMap.
type Resolver struct {
	detector  Detector
	languages LanguageMap
}

func NewResolver(detector Detector, languages LanguageMap) *Resolver {
	return &Resolver{detector: detector, languages: languages}
}

// Languages returns the supported language map.
func (r *Resolver) Languages() LanguageMap {
	return r.languages
}

// Resolve detects the language of text and maps it onto a supported tag.
func (r *Resolver) Resolve(text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return Outcome{Kind: DetectionFailed, Err: ErrUndetectable}
	}

	code, err := r.detector.DetectLanguage(text)
	if err != nil {
		logger.Debug("language detection failed", "module", "langdetect", "action", "detect", "resource", "language", "result", "failed", "error", err)
		return Outcome{Kind: DetectionFailed, Err: err}
	}

	tag, ok := r.languages.Lookup(code)
	if !ok {
		logger.Debug("language unsupported", "module", "langdetect", "action", "detect", "resource", "language", "result", "unsupported", "code", code)
		return Outcome{Kind: Unsupported, Code: code}
	}
	return Outcome{Kind: Supported, Code: code, Tag: tag}
}
