package textmine

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	urlPattern  = regexp.MustCompile(`https?://\S+`)
	htmlPattern = regexp.MustCompile(`<[^>]*>`)
	wordSplit   = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	hexPattern  = regexp.MustCompile(`^[0-9a-f]{6,}$`)
)

// clean strips URLs and HTML tags, decodes HTML entities, and lowercases,
// the shared cleanup pass every free-text source (title, description,
// transcript, comments) goes through before tokenizing.
func clean(text string) string {
	text = urlPattern.ReplaceAllString(text, " ")
	text = htmlPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	return strings.ToLower(text)
}

// words splits cleaned text on non-word characters and drops anything
// shorter than 3 characters, a hex-looking id, or an integer literal.
func words(text string) []string {
	raw := wordSplit.Split(clean(text), -1)
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) < 3 {
			continue
		}
		if hexPattern.MatchString(w) {
			continue
		}
		if _, err := strconv.Atoi(w); err == nil {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ngrams removes every word in stopWords from a word sequence, then
// emits unigrams, bigrams, and trigrams over the remaining words, so no
// emitted n-gram contains a stop word.
func ngrams(ws []string, stopWords map[string]struct{}) []string {
	filtered := make([]string, 0, len(ws))
	for _, w := range ws {
		if _, stop := stopWords[w]; stop {
			continue
		}
		filtered = append(filtered, w)
	}
	out := make([]string, 0, len(filtered)*3)
	for i := range filtered {
		out = append(out, filtered[i])
		if i+1 < len(filtered) {
			out = append(out, filtered[i]+" "+filtered[i+1])
		}
		if i+2 < len(filtered) {
			out = append(out, filtered[i]+" "+filtered[i+1]+" "+filtered[i+2])
		}
	}
	return out
}

// TermsFromText runs the full free-text pipeline: clean, tokenize, drop
// stop words, emit n-grams.
func TermsFromText(text string, stopWords map[string]struct{}) []string {
	return ngrams(words(text), stopWords)
}

// TermsFromTag normalises one tag: lowercase, trim, collapse internal
// whitespace, require length > 2 (tags are not n-grammed).
func TermsFromTag(tag string) (string, bool) {
	collapsed := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(tag))), " ")
	if len(collapsed) <= 2 {
		return "", false
	}
	return collapsed, true
}

// Words exposes the shared clean-and-split tokenizer for callers outside
// this package that need plain word sequences without n-gramming (the
// recommendation optimiser's transcript-bigram clustering).
func Words(text string) []string {
	return words(text)
}
