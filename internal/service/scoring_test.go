package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/model"
	"kvtranslate/backend/internal/service"
)

func TestConfidence(t *testing.T) {
	cases := []struct {
		original, translated string
		want                 float64
	}{
		{"John", "JOHN", 1},
		{"Bonjour", "", 0},
		{"abc", "a", 0.33},
		{"abc", "ab", 0.67},
		{"ab", "abcdef", 1},
		{"", "x", 1},
		{"", "", 0},
		{"  Paris  ", " Paris", 1},
		{"été", "su", 0.67},
		{"abcdefgh", "a", 0.12},
		{"abcdefgh", "abcde", 0.62},
		{"abcdefgh", "abc", 0.38},
		{strings.Repeat("a", 40), "abc", 0.07},
	}
	for _, tc := range cases {
		got := service.Confidence(tc.original, tc.translated)
		require.Equal(t, tc.want, got, "%q -> %q", tc.original, tc.translated)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 1.0)
	}
}

func TestIsSuspicious(t *testing.T) {
	require.True(t, service.IsSuspicious(""))
	require.True(t, service.IsSuspicious("   "))
	require.True(t, service.IsSuspicious(" a "))
	require.True(t, service.IsSuspicious("é"))
	require.False(t, service.IsSuspicious("ab"))
	require.False(t, service.IsSuspicious(" 30 "))
}

func TestAverageConfidence(t *testing.T) {
	require.Equal(t, 0.0, service.AverageConfidence(nil))
	require.Equal(t, 1.0, service.AverageConfidence([]float64{1, 1}))
	require.Equal(t, 0.61, service.AverageConfidence([]float64{1, 0.5, 0.33}))
	require.Equal(t, 0.12, service.AverageConfidence([]float64{0.12, 0.13}))
	require.Equal(t, 0.62, service.AverageConfidence([]float64{0.62, 0.63}))
}

func TestScoreDocument(t *testing.T) {
	pairs := []model.ExtractedPair{{Key: "Nom", Value: "Jean"}, {Key: "Ville", Value: "Lyon"}}
	rows, result := service.ScoreDocument("a.pdf", pairs, []string{"Name", "City"}, []string{"John", ""})

	require.Len(t, rows, 2)
	require.Equal(t, model.TranslationRow{
		SourceDocument: "a.pdf", OriginalKey: "Nom", OriginalValue: "Jean",
		TranslatedKey: "Name", TranslatedValue: "John", Confidence: 1,
	}, rows[0])
	require.True(t, rows[1].Suspicious)
	require.Equal(t, 0.0, rows[1].Confidence)

	require.Equal(t, model.DocumentTranslated, result.Status)
	require.Equal(t, 2, result.TotalPairs)
	require.Equal(t, 0, result.TranslationErrors)
	require.Equal(t, 1, result.SuspiciousTranslations)
	require.Equal(t, 0.5, result.AverageConfidence)
}

func TestReportName(t *testing.T) {
	require.Equal(t, "invoice_translated.xlsx", service.ReportName("invoice.pdf"))
	require.Equal(t, "scan.v2_translated.xlsx", service.ReportName("scan.v2.pdf"))
	require.Equal(t, "notes_translated.xlsx", service.ReportName("notes"))
}
