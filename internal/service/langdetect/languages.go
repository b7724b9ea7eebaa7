// Package langdetect maps free text onto a supported source-language tag.
package langdetect

import (
	"fmt"
	"sort"
	"strings"
)

// LanguageMap maps a two-letter ISO 639-1 code to the NLLB-style
// language_Script tag understood by the translator, e.g. "fr" -> "fra_Latn".
type LanguageMap map[string]string

// TargetTag is the tag of the only target language.
const TargetTag = "eng_Latn"

// DefaultLanguages returns the built-in set of supported source languages.
func DefaultLanguages() LanguageMap {
	return LanguageMap{
		"hi": "hin_Deva", "fr": "fra_Latn", "de": "deu_Latn", "es": "spa_Latn",
		"ru": "rus_Cyrl", "zh": "zho_Hans", "ja": "jpn_Jpan", "ko": "kor_Hang",
		"ar": "ara_Arab", "tr": "tur_Latn", "pt": "por_Latn", "id": "ind_Latn",
		"vi": "vie_Latn", "bn": "ben_Beng", "ta": "tam_Taml", "te": "tel_Telu",
		"ml": "mal_Mlym", "mr": "mar_Deva", "ur": "urd_Arab",
	}
}

// ParseLanguageMap parses "fr=fra_Latn,de=deu_Latn".
func ParseLanguageMap(s string) (LanguageMap, error) {
	m := LanguageMap{}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		code, tag, ok := strings.Cut(item, "=")
		code = strings.ToLower(strings.TrimSpace(code))
		tag = strings.TrimSpace(tag)
		if !ok || len(code) != 2 || !validTag(tag) {
			return nil, fmt.Errorf("invalid language mapping %q", item)
		}
		m[code] = tag
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("no languages configured")
	}
	return m, nil
}

// Lookup returns the tag for code.
func (m LanguageMap) Lookup(code string) (string, bool) {
	tag, ok := m[strings.ToLower(code)]
	return tag, ok
}

// Codes returns the supported codes in sorted order.
func (m LanguageMap) Codes() []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// validTag accepts three lowercase letters, an underscore and a four-letter script.
func validTag(tag string) bool {
	lang, script, ok := strings.Cut(tag, "_")
	return ok && len(lang) == 3 && len(script) == 4
}
