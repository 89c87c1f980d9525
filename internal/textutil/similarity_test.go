package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
	}{
		{"both nil", nil, nil},
		{"a nil", nil, NewFingerprint("the godfather")},
		{"b nil", NewFingerprint("the godfather"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CosineSimilarity(tt.a, tt.b); got != 0 {
				t.Errorf("CosineSimilarity() = %v, want 0", got)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	a := NewFingerprint("Once Upon a Time in the West")
	b := NewFingerprint("once upon a time in the west")

	if got := CosineSimilarity(a, b); math.Abs(got-1) > 1e-9 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	a := NewFingerprint("The Godfather")
	b := NewFingerprint("The Godfather Part II")

	got := CosineSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Errorf("CosineSimilarity(partial) = %v, want between 0 and 1", got)
	}
	if CosineSimilarity(b, a) != got {
		t.Error("CosineSimilarity is not symmetric")
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	a := &Fingerprint{tokens: map[string]float64{}, norm: 0}
	if got := CosineSimilarity(a, NewFingerprint("vertigo")); got != 0 {
		t.Errorf("CosineSimilarity(zero norm) = %v, want 0", got)
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// "bad bad boys" -> bad:2, boys:1
	fp := NewFingerprint("bad bad boys")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}
	if want := math.Sqrt(5); math.Abs(fp.norm-want) > 0.0001 {
		t.Errorf("norm = %v, want %v", fp.norm, want)
	}
	if fp.TokenCount() != 2 {
		t.Errorf("TokenCount() = %d, want 2", fp.TokenCount())
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if fp := NewFingerprint("!?"); fp != nil {
		t.Error("expected nil for text without tokens")
	}
	var nilFP *Fingerprint
	if nilFP.TokenCount() != 0 {
		t.Error("expected zero token count for nil fingerprint")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple words", "Rear Window", []string{"rear", "window"}},
		{"drops single characters", "A Man Escaped", []string{"man", "escaped"}},
		{"punctuation", "E.T. the Extra-Terrestrial", []string{"the", "extra", "terrestrial"}},
		{"numbers", "2001: A Space Odyssey", []string{"2001", "space", "odyssey"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSuggestRanksClosestFirst(t *testing.T) {
	candidates := []string{"Casablanca", "The Godfather Part II", "The Godfather", "Goodfellas"}

	got := Suggest("godfather", candidates, 2, 0.1)
	if len(got) != 2 {
		t.Fatalf("Suggest returned %d suggestions, want 2: %+v", len(got), got)
	}
	if got[0].Text != "The Godfather" {
		t.Fatalf("first suggestion = %q, want The Godfather", got[0].Text)
	}
	if got[1].Text != "The Godfather Part II" {
		t.Fatalf("second suggestion = %q, want The Godfather Part II", got[1].Text)
	}
	if got[0].Index != 2 {
		t.Fatalf("first suggestion index = %d, want 2", got[0].Index)
	}
}

func TestSuggestNoQueryTokens(t *testing.T) {
	if got := Suggest("", []string{"Jaws"}, 3, 0); got != nil {
		t.Fatalf("expected nil suggestions, got %+v", got)
	}
}
