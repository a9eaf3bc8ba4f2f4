package game

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		answer  string
		guess   string
		scoring Scoring
		want    string
	}{
		{"mulch", "music", ScoringSimple, "GGXXY"},
		{"mulch", "music", ScoringClassic, "GGXXY"},
		{"crane", "slate", ScoringSimple, "XXGXG"},
		{"crane", "crane", ScoringSimple, "GGGGG"},
		{"crane", "crane", ScoringClassic, "GGGGG"},
		{"crane", "built", ScoringSimple, "XXXXX"},
		{"crane", "nacre", ScoringSimple, "YYYYG"},
		// repeated guess letters: every s is present under the simple scheme,
		// only one is under the classic one
		{"slate", "sassy", ScoringSimple, "GYYYX"},
		{"slate", "sassy", ScoringClassic, "GYXXX"},
		{"swiss", "sassy", ScoringSimple, "GXYGX"},
		{"swiss", "sassy", ScoringClassic, "GXYGX"},
		// a letter correct elsewhere still counts as present under simple
		{"abbey", "babes", ScoringSimple, "YYGGX"},
		{"abbey", "kebab", ScoringClassic, "XYGYY"},
	}
	for _, tt := range tests {
		got := Score(tt.answer, tt.guess, tt.scoring).String()
		if got != tt.want {
			t.Errorf("Score(%q, %q, %s) = %s, want %s", tt.answer, tt.guess, tt.scoring, got, tt.want)
		}
	}
}

func TestScore_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	Score("crane", "cranes", ScoringSimple)
}

func TestFeedback_Solved(t *testing.T) {
	tests := []struct {
		fb   Feedback
		want bool
	}{
		{Feedback{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}, true},
		{Feedback{MarkCorrect, MarkCorrect, MarkPresent, MarkCorrect, MarkCorrect}, false},
		// no present letters is not a win on its own
		{Feedback{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}, false},
		{Feedback{MarkPresent, MarkPresent, MarkPresent, MarkPresent, MarkPresent}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := tt.fb.Solved(); got != tt.want {
			t.Errorf("%s.Solved() = %v, want %v", tt.fb, got, tt.want)
		}
	}
}

func TestParseScoring(t *testing.T) {
	tests := []struct {
		in      string
		want    Scoring
		wantErr bool
	}{
		{"", ScoringSimple, false},
		{"simple", ScoringSimple, false},
		{"Classic", ScoringClassic, false},
		{"strict", ScoringSimple, true},
	}
	for _, tt := range tests {
		got, err := ParseScoring(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseScoring(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScoring(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
