package session

import "testing"

func TestTileStatus(t *testing.T) {
	tests := []struct {
		name   string
		letter rune
		pos    int
		secret string
		want   Status
	}{
		{name: "exact match", letter: 'C', pos: 0, secret: "CRANE", want: StatusGreen},
		{name: "exact match lowercase", letter: 'e', pos: 4, secret: "CRANE", want: StatusGreen},
		{name: "present elsewhere", letter: 'A', pos: 0, secret: "CRANE", want: StatusYellow},
		{name: "absent", letter: 'Z', pos: 2, secret: "CRANE", want: StatusGrey},
		{name: "empty letter", letter: 0, pos: 0, secret: "CRANE", want: StatusWhite},
		{name: "count-blind duplicate", letter: 'E', pos: 0, secret: "EERIE", want: StatusYellow},
		{name: "out of range position falls back to containment", letter: 'C', pos: 9, secret: "CRANE", want: StatusYellow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TileStatus(tt.letter, tt.pos, tt.secret); got != tt.want {
				t.Fatalf("TileStatus(%q, %d, %q) = %v, want %v", tt.letter, tt.pos, tt.secret, got, tt.want)
			}
		})
	}
}

// TRACE against CRANE: T grey, R green, A green, C yellow, E green.
func TestRowScoresFrozenGuess(t *testing.T) {
	s := New(DefaultConfig(), "CRANE")
	typeWord(s, "TRACE")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	want := []Status{StatusGrey, StatusGreen, StatusGreen, StatusYellow, StatusGreen}
	row := s.Row(0)
	for i, tile := range row {
		if tile.Status != want[i] {
			t.Fatalf("row 0 tile %d = %v, want %v", i, tile.Status, want[i])
		}
	}
	if string([]rune{row[0].Letter, row[1].Letter, row[2].Letter, row[3].Letter, row[4].Letter}) != "TRACE" {
		t.Fatalf("row 0 letters wrong: %+v", row)
	}
}

func TestActiveRowStaysWhiteWhilePlaying(t *testing.T) {
	s := New(DefaultConfig(), "CRANE")
	typeWord(s, "CRAN")

	for i, tile := range s.Row(0) {
		if tile.Status != StatusWhite {
			t.Fatalf("active row tile %d = %v, want white", i, tile.Status)
		}
	}
	if got := s.Row(0)[0].Letter; got != 'C' {
		t.Fatalf("active row letter = %q, want C", got)
	}
}

func TestActiveRowRevealedOnGameOver(t *testing.T) {
	s := New(DefaultConfig(), "CRANE")
	typeWord(s, "CRANE")
	if out, err := s.Submit(); err != nil || out != OutcomeWin {
		t.Fatalf("Submit() = (%v, %v)", out, err)
	}

	for i, tile := range s.Row(0) {
		if tile.Status != StatusGreen {
			t.Fatalf("winning row tile %d = %v, want green", i, tile.Status)
		}
	}
}

func TestFutureRowsAreEmptyWhite(t *testing.T) {
	s := New(DefaultConfig(), "CRANE")
	typeWord(s, "TRACE")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	for _, i := range []int{2, 5} {
		for p, tile := range s.Row(i) {
			if tile.Letter != 0 || tile.Status != StatusWhite {
				t.Fatalf("row %d tile %d = %+v, want empty white", i, p, tile)
			}
		}
	}
}
