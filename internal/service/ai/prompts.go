package ai

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageNames maps NLLB language codes to English names for prompts.
var languageNames = map[string]string{
	"hin": "Hindi", "fra": "French", "deu": "German", "spa": "Spanish",
	"rus": "Russian", "zho": "Chinese", "jpn": "Japanese", "kor": "Korean",
	"ara": "Arabic", "tur": "Turkish", "por": "Portuguese", "ind": "Indonesian",
	"vie": "Vietnamese", "ben": "Bengali", "tam": "Tamil", "tel": "Telugu",
	"mal": "Malayalam", "mar": "Marathi", "urd": "Urdu", "eng": "English",
	"ita": "Italian", "nld": "Dutch", "pol": "Polish", "ukr": "Ukrainian",
}

// LanguageName returns a readable name for a language_Script tag such as
// "fra_Latn", falling back to CLDR names for codes outside languageNames.
// Unknown tags are returned unchanged.
func LanguageName(tag string) string {
	code, _, _ := strings.Cut(tag, "_")
	if name, ok := languageNames[code]; ok {
		return name
	}
	if t, err := language.Parse(code); err == nil && t != language.Und {
		if name := display.English.Languages().Name(t); name != "" {
			return name
		}
	}
	return tag
}

// GetTranslateBatchPrompt returns the system prompt for translating a JSON
// array of strings from sourceTag into targetTag.
func GetTranslateBatchPrompt(sourceTag, targetTag string) string {
	return fmt.Sprintf(`You are an expert translator of form and document fields.

<context>
<source_language>%s (%s)</source_language>
<target_language>%s (%s)</target_language>
</context>

<input_format>
The user message is a JSON array of strings wrapped in <input> tags.
Each string is a field label or a field value extracted from a PDF.
</input_format>

<instructions>
1. Translate EVERY array element from the source language into the target language
2. Output ONLY a JSON array of strings, nothing else
3. The output array MUST have exactly the same number of elements, in the same order
4. Translate each element independently; NEVER merge, split, drop or reorder elements
5. Keep numbers, dates, codes, amounts, email addresses and URLs unchanged
6. Preserve line breaks inside an element as \n
7. An empty input element produces an empty output element
8. NEVER wrap output in markdown code blocks
</instructions>`, LanguageName(sourceTag), sourceTag, LanguageName(targetTag), targetTag)
}

// WrapInputSimple wraps content in input tags.
func WrapInputSimple(content string) string {
	return "<input>\n" + content + "\n</input>"
}
