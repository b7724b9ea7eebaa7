package extract_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/extract"
)

func TestPDFTextExtractor_MissingFile(t *testing.T) {
	e := extract.NewPDFTextExtractor()
	_, err := e.ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "open pdf")
}

func TestPDFTextExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0o644))

	_, err := extract.NewPDFTextExtractor().ExtractText(context.Background(), path)
	require.Error(t, err)
}
