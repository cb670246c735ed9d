package words

import "testing"

func TestEmbeddedListLoads(t *testing.T) {
	if err := Load(); err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if Count() == 0 {
		t.Fatal("embedded answer list is empty")
	}
	for _, w := range Answers() {
		if len(w) != WordLength || !isAlpha(w) {
			t.Fatalf("bad embedded word %q", w)
		}
	}
	if !Contains("crane") || !Contains("HELLO") {
		t.Fatal("expected crane and hello in the answer list")
	}
	if Contains("zzzzz") {
		t.Fatal("unexpected word in answer list")
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		answer string
		want   []int
	}{
		{name: "all hits", guess: "crane", answer: "crane", want: []int{2, 2, 2, 2, 2}},
		{name: "mixed", guess: "trace", answer: "crane", want: []int{0, 2, 2, 1, 2}},
		{name: "all misses", guess: "jumpy", answer: "crane", want: []int{0, 0, 0, 0, 0}},
		// Duplicate handling: only as many presents as unmatched copies remain.
		{name: "duplicate guess letters", guess: "geese", answer: "crane", want: []int{0, 0, 0, 0, 2}},
		{name: "duplicate answer letters", guess: "eerie", answer: "eerie", want: []int{2, 2, 2, 2, 2}},
		{name: "single e against double", guess: "pleat", answer: "eerie", want: []int{0, 0, 1, 0, 0}},
		{name: "wrong length", guess: "cat", answer: "crane", want: []int{0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.guess, tt.answer)
			if len(got) != len(tt.want) {
				t.Fatalf("Score() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Score(%q, %q) = %v, want %v", tt.guess, tt.answer, got, tt.want)
				}
			}
		})
	}
}
