package translate_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode"

	"github.com/stretchr/testify/require"

	"kvtranslate/backend/internal/service/ai"
	"kvtranslate/backend/internal/service/translate"
)

// providerStub decodes the JSON array sent by the translator and answers
// with transform applied to each element.
type providerStub struct {
	mu        sync.Mutex
	transform func(string) string
	reply     func(items []string) (string, error)
	calls     [][]string
	prompts   []string
}

func (p *providerStub) Name() string                            { return "stub" }
func (p *providerStub) Test(ctx context.Context) (string, error) { return "ok", nil }

func (p *providerStub) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(content, "<input>\n"), "\n</input>")
	var items []string
	if err := json.Unmarshal([]byte(body), &items); err != nil {
		return "", err
	}

	p.mu.Lock()
	p.calls = append(p.calls, items)
	p.prompts = append(p.prompts, systemPrompt)
	p.mu.Unlock()

	if p.reply != nil {
		return p.reply(items)
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = p.transform(item)
	}
	data, _ := json.Marshal(out)
	return string(data), nil
}

type cacheStub struct {
	data    map[string]string
	getErr  error
	saveErr error
	saved   map[string]string
}

func (c *cacheStub) GetBatch(ctx context.Context, sourceLang string, texts []string) (map[string]string, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := make(map[string]string)
	for _, text := range texts {
		if v, ok := c.data[sourceLang+"|"+text]; ok {
			out[text] = v
		}
	}
	return out, nil
}

func (c *cacheStub) SaveBatch(ctx context.Context, sourceLang string, translations map[string]string) error {
	c.saved = translations
	return c.saveErr
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

func newTranslator(p ai.Provider, cache translate.Cache, opts translate.Options) *translate.LLMTranslator {
	return translate.NewLLMTranslator(p, ai.NewRateLimiter(1000), cache, opts)
}

func TestTranslateBatch_PreservesOrder(t *testing.T) {
	p := &providerStub{transform: swapCase}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"a", "B", "c"}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "b", "C"}, out)
	require.Len(t, p.calls, 1)
	require.Contains(t, p.prompts[0], "French (fra_Latn)")
	require.Contains(t, p.prompts[0], "English (eng_Latn)")
}

func TestTranslateBatch_Empty(t *testing.T) {
	tr := newTranslator(&providerStub{transform: swapCase}, nil, translate.Options{})
	_, err := tr.TranslateBatch(context.Background(), nil, "fra_Latn")
	require.ErrorIs(t, err, translate.ErrEmptyBatch)
}

func TestTranslateBatch_BlankItemsSkipBackend(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"", "x", "  "}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"", "X", ""}, out)
	require.Equal(t, [][]string{{"x"}}, p.calls)
}

func TestTranslateBatch_AllBlankNoCall(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"", ""}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"", ""}, out)
	require.Empty(t, p.calls)
}

func TestTranslateBatch_DuplicatesSentOnce(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"nom", "date", "nom"}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"NOM", "DATE", "NOM"}, out)
	require.Equal(t, [][]string{{"nom", "date"}}, p.calls)
}

func TestTranslateBatch_BackendFailureFailsWholeBatch(t *testing.T) {
	p := &providerStub{reply: func([]string) (string, error) { return "", errors.New("model unavailable") }}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"a", "b"}, "fra_Latn")
	require.Error(t, err)
	require.Nil(t, out)
	require.Contains(t, err.Error(), "model unavailable")
}

func TestTranslateBatch_CountMismatch(t *testing.T) {
	p := &providerStub{reply: func([]string) (string, error) { return `["only one"]`, nil }}
	tr := newTranslator(p, nil, translate.Options{})

	_, err := tr.TranslateBatch(context.Background(), []string{"a", "b"}, "fra_Latn")
	require.ErrorIs(t, err, translate.ErrCountMismatch)
}

func TestTranslateBatch_SingleItemBareReply(t *testing.T) {
	p := &providerStub{reply: func([]string) (string, error) { return " Name \n", nil }}
	tr := newTranslator(p, nil, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"Nom"}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"Name"}, out)
}

func TestTranslateBatch_ChunksRequests(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	tr := newTranslator(p, nil, translate.Options{ChunkTokens: 2})

	texts := []string{"aaaa", "bbbb", "cccc", "dddddddddddd"}
	out, err := tr.TranslateBatch(context.Background(), texts, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"AAAA", "BBBB", "CCCC", "DDDDDDDDDDDD"}, out)
	require.Equal(t, [][]string{{"aaaa", "bbbb"}, {"cccc"}, {"dddddddddddd"}}, p.calls)
}

func TestTranslateBatch_TruncatesLongItems(t *testing.T) {
	p := &providerStub{transform: func(s string) string { return s }}
	tr := newTranslator(p, nil, translate.Options{MaxTokens: 2})

	out, err := tr.TranslateBatch(context.Background(), []string{"0123456789", "ab"}, "fra_Latn")
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "01234567", out[0])
	require.Equal(t, "ab", out[1])
}

func TestTranslateBatch_UsesCache(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	cache := &cacheStub{data: map[string]string{"fra_Latn|nom": "Name"}}
	tr := newTranslator(p, cache, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"nom", "ville"}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "VILLE"}, out)
	require.Equal(t, [][]string{{"ville"}}, p.calls)
	require.Equal(t, map[string]string{"ville": "VILLE"}, cache.saved)
}

func TestTranslateBatch_CacheErrorsAreNotFatal(t *testing.T) {
	p := &providerStub{transform: strings.ToUpper}
	cache := &cacheStub{getErr: errors.New("db down"), saveErr: errors.New("db down")}
	tr := newTranslator(p, cache, translate.Options{})

	out, err := tr.TranslateBatch(context.Background(), []string{"nom"}, "fra_Latn")
	require.NoError(t, err)
	require.Equal(t, []string{"NOM"}, out)
}

func TestTranslateBatch_Timeout(t *testing.T) {
	p := &providerStub{reply: func([]string) (string, error) {
		time.Sleep(50 * time.Millisecond)
		return "", context.DeadlineExceeded
	}}
	tr := newTranslator(p, nil, translate.Options{Timeout: 10 * time.Millisecond})

	_, err := tr.TranslateBatch(context.Background(), []string{"a"}, "fra_Latn")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseArray(t *testing.T) {
	out, err := translate.ParseArray("```json\n[\"a\", \"b\\nc\", 3, null]\n```")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b\nc", "3", ""}, out)

	out, err = translate.ParseArray(`Here you go: ["Name", "Date"] (see [1] for notes)`)
	require.NoError(t, err)
	require.Equal(t, []string{"Name", "Date"}, out)

	_, err = translate.ParseArray("no array here")
	require.Error(t, err)

	_, err = translate.ParseArray("[unterminated")
	require.Error(t, err)

	_, err = translate.ParseArray(`[["a", "b"], {"key": "c"}]`)
	require.ErrorContains(t, err, "schema")
}

func TestUnavailable(t *testing.T) {
	tr := translate.Unavailable(ai.ErrMissingAPIKey)
	_, err := tr.TranslateBatch(context.Background(), []string{"Nom"}, "fra_Latn")
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)
}
