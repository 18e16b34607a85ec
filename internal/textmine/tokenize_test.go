package textmine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords_StripsURLsAndHTML(t *testing.T) {
	got := words("Check <b>this</b> out at https://example.com/path now")
	assert.NotContains(t, got, "https", "URL token leaked through")
	assert.NotContains(t, got, "b", "HTML tag token leaked through")
}

func TestWords_DropsShortHexAndIntegers(t *testing.T) {
	got := words("abc123def 12345 a1b2c3 widget")
	assert.NotContains(t, got, "12345", "integer literal should have been dropped")
	assert.NotContains(t, got, "a1b2c3", "hex-looking token should have been dropped")
	assert.Contains(t, got, "widget")
}

func TestWords_DropsShortWords(t *testing.T) {
	got := words("a an hi go widget")
	for _, w := range got {
		assert.GreaterOrEqual(t, len(w), 3, "word shorter than 3 chars leaked through: %q", w)
	}
}

func TestTermsFromTag(t *testing.T) {
	term, ok := TermsFromTag("  Go   Lang Tutorial  ")
	require.True(t, ok)
	assert.Equal(t, "go lang tutorial", term)

	_, ok = TermsFromTag("ab")
	assert.False(t, ok, "2-char tag should be rejected (length > 2 required)")

	_, ok = TermsFromTag("abc")
	assert.True(t, ok, "3-char tag should be accepted")
}

func TestNgrams_EmitsUnigramBigramTrigram(t *testing.T) {
	terms := ngrams([]string{"red", "blue", "green"}, map[string]struct{}{})
	for _, want := range []string{
		"red", "blue", "green",
		"red blue", "blue green",
		"red blue green",
	} {
		assert.Contains(t, terms, want)
	}
}

func TestNgrams_DropsStopWordLed(t *testing.T) {
	terms := ngrams([]string{"the", "widget", "review"}, extractionStopWords)
	assert.NotContains(t, terms, "the", "stop word should not appear as a unigram")
}
