package textmine

import (
	"testing"

	"github.com/McZenith/liza.ai.server/internal/domain"
)

// An empty video list returns an empty keyword list.
func TestExtractKeywords_Empty(t *testing.T) {
	got := ExtractKeywords(nil, 50)
	if len(got) != 0 {
		t.Errorf("ExtractKeywords(nil) = %v, want empty", got)
	}
}

func makeVideo(title, description string, tags []string) domain.EnrichedVideo {
	return domain.EnrichedVideo{
		Video: domain.Video{Title: title, Description: description, Tags: tags},
	}
}

// A term appearing in every document scores zero (ln(N/N) = 0).
func TestExtractKeywords_UniversalTermScoresZero(t *testing.T) {
	videos := []domain.EnrichedVideo{
		makeVideo("widget review guide", "how to pick the best widget", nil),
		makeVideo("widget comparison", "widget buying advice for beginners", nil),
		makeVideo("top widget picks", "widget shopping tips and tricks", nil),
	}
	keywords := ExtractKeywords(videos, 50)
	found := false
	for _, k := range keywords {
		if k.Term == "widget" {
			found = true
			if k.Score != 0 {
				t.Errorf("universal term %q scored %v, want 0", k.Term, k.Score)
			}
		}
	}
	if !found {
		t.Fatal("expected \"widget\" to be extracted as a universal term")
	}
}

// Keyword extraction is idempotent on a fixed video set.
func TestExtractKeywords_Idempotent(t *testing.T) {
	videos := []domain.EnrichedVideo{
		makeVideo("cooking pasta tutorial", "learn how to cook pasta at home", []string{"pasta", "cooking"}),
		makeVideo("easy pasta recipe", "quick pasta recipe for dinner", []string{"pasta", "recipe"}),
	}
	first := ExtractKeywords(videos, 20)
	second := ExtractKeywords(videos, 20)
	if len(first) != len(second) {
		t.Fatalf("len mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestExtractKeywords_TopKLimit(t *testing.T) {
	videos := []domain.EnrichedVideo{
		makeVideo("alpha bravo charlie delta echo foxtrot golf hotel india juliet", "", nil),
	}
	got := ExtractKeywords(videos, 3)
	if len(got) > 3 {
		t.Errorf("len(got) = %d, want <= 3", len(got))
	}
}

func TestDocumentTerms_TagsNotNGrammed(t *testing.T) {
	v := makeVideo("", "", []string{"  Go   Lang  ", "ab", "abc"})
	terms := DocumentTerms(v)
	if _, ok := terms["go lang"]; !ok {
		t.Errorf("expected collapsed+lowercased tag \"go lang\" in terms, got %v", terms)
	}
	if _, ok := terms["ab"]; ok {
		t.Error("2-char tag \"ab\" should have been dropped (length > 2 required)")
	}
}

func TestDocumentTerms_TranscriptOnlyWhenPresent(t *testing.T) {
	v := domain.EnrichedVideo{
		Video:      domain.Video{Title: "x"},
		Transcript: &domain.Transcript{Present: false, Text: "secretword appears here only"},
	}
	terms := DocumentTerms(v)
	if _, ok := terms["secretword"]; ok {
		t.Error("transcript text should be ignored when Present is false")
	}
}
