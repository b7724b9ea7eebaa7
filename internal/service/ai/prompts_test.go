package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/service/ai"
)

func TestWrapInputSimple(t *testing.T) {
	wrapped := ai.WrapInputSimple(`["a"]`)
	require.Equal(t, "<input>\n[\"a\"]\n</input>", wrapped)
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "French", ai.LanguageName("fra_Latn"))
	require.Equal(t, "Chinese", ai.LanguageName("zho_Hans"))
	require.Equal(t, "Swedish", ai.LanguageName("swe_Latn"))
	require.Equal(t, "xyz_Abcd", ai.LanguageName("xyz_Abcd"))
}

func TestGetTranslateBatchPrompt(t *testing.T) {
	prompt := ai.GetTranslateBatchPrompt("deu_Latn", "eng_Latn")
	require.Contains(t, prompt, "<source_language>German (deu_Latn)</source_language>")
	require.Contains(t, prompt, "<target_language>English (eng_Latn)</target_language>")
	require.Contains(t, prompt, "JSON array")
	require.Contains(t, prompt, "same number of elements")
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())

	rl.SetLimit(3)
	require.Equal(t, 3, rl.GetLimit())
}
