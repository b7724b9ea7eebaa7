package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/service/langdetect"
)

func TestLinguaDetector_Empty(t *testing.T) {
	d := langdetect.NewLinguaDetector()
	_, err := d.DetectLanguage("  ")
	require.ErrorIs(t, err, langdetect.ErrUndetectable)
}

func TestLinguaDetector_French(t *testing.T) {
	if testing.Short() {
		t.Skip("loads language models")
	}
	d := langdetect.NewLinguaDetector()
	code, err := d.DetectLanguage("Bonjour, je m'appelle Jean et j'habite à Paris depuis dix ans avec ma famille.")
	require.NoError(t, err)
	require.Equal(t, "fr", code)
}
