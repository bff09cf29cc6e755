package engine

import (
	"math"
	"testing"
)

const floatTol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTol
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantPG float64
		wantPE float64
	}{
		{"empty", "", 0.5, 0.5},
		{"neutral", "the weather is nice today", 0.5, 0.5},
		{"two-protective", "I want to help and protect people.", 0.7, 0.3},
		{"one-harmful", "they want to hurt someone", 0.4, 0.6},
		{"mixed", "help them, do not hurt them", 0.5, 0.5},
		{"case-insensitive", "HELP and PROTECT", 0.7, 0.3},
		{"all-protective", "help protect care honest respect safety", 1.0, 0.0},
		{"all-harmful", "hurt kill destroy abuse dominate oppress", 0.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg, pe := Score(tt.text)
			if !almostEqual(pg, tt.wantPG) {
				t.Errorf("PG: got %v, want %v", pg, tt.wantPG)
			}
			if !almostEqual(pe, tt.wantPE) {
				t.Errorf("PE: got %v, want %v", pe, tt.wantPE)
			}
		})
	}
}

func TestScoreMembershipNotFrequency(t *testing.T) {
	// A repeated word contributes once, same as a single occurrence.
	pgOnce, _ := Score("help")
	pgMany, _ := Score("help help help help")
	if !almostEqual(pgOnce, pgMany) {
		t.Fatalf("repetition changed score: %v vs %v", pgOnce, pgMany)
	}
	if !almostEqual(pgOnce, 0.6) {
		t.Fatalf("single protective hit: got %v, want 0.6", pgOnce)
	}
}

func TestScoreSumsToOne(t *testing.T) {
	texts := []string{
		"",
		"hello",
		"help protect care",
		"kill destroy abuse dominate oppress hurt",
		"help hurt kill protect",
		"ünïcödé input should be fine",
	}
	for _, text := range texts {
		pg, pe := Score(text)
		if sum := pg + pe; !almostEqual(sum, 1.0) {
			t.Errorf("Score(%q): PG+PE = %v, want 1", text, sum)
		}
		if pg < 0 || pg > 1 || pe < 0 || pe > 1 {
			t.Errorf("Score(%q): out of range PG=%v PE=%v", text, pg, pe)
		}
	}
}

func TestScoreClampsBeforeRenormalize(t *testing.T) {
	// Six harmful hits push rawPG to -0.1; both sides clamp, then the pair
	// renormalizes to exactly (0, 1).
	pg, pe := Score("they will hurt, kill, destroy, abuse, dominate and oppress everyone")
	if !almostEqual(pg, 0.0) || !almostEqual(pe, 1.0) {
		t.Fatalf("got PG=%v PE=%v, want 0 and 1", pg, pe)
	}
}
