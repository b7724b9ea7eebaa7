package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/service/langdetect"
)

func TestDefaultLanguages(t *testing.T) {
	langs := langdetect.DefaultLanguages()
	require.Len(t, langs, 19)
	require.Equal(t, "hin_Deva", langs["hi"])
	require.Equal(t, "urd_Arab", langs["ur"])
	_, ok := langs.Lookup("en")
	require.False(t, ok, "English is the target, never a source")
}

func TestParseLanguageMap(t *testing.T) {
	m, err := langdetect.ParseLanguageMap(" FR=fra_Latn , it=ita_Latn,")
	require.NoError(t, err)
	require.Equal(t, langdetect.LanguageMap{"fr": "fra_Latn", "it": "ita_Latn"}, m)
	require.Equal(t, []string{"fr", "it"}, m.Codes())
}

func TestParseLanguageMap_Invalid(t *testing.T) {
	for _, in := range []string{"", "fr", "fra=fra_Latn", "fr=French", "fr=fr_Latn"} {
		_, err := langdetect.ParseLanguageMap(in)
		require.Error(t, err, in)
	}
}
