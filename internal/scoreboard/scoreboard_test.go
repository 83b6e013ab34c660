package scoreboard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kethomassen/austerity/internal/cards"
	"github.com/kethomassen/austerity/internal/engine"
)

func mkGame(t *testing.T, names []string) *engine.Game {
	t.Helper()
	deck, err := cards.ParseDeck(strings.NewReader("P:1:0,0,0,0\n"))
	if err != nil {
		t.Fatalf("ParseDeck: %v", err)
	}
	return engine.New(1, "g", 1, names, deck, 3, 10)
}

func TestAggregateSumsAcrossGamesByName(t *testing.T) {
	g1 := mkGame(t, []string{"Amy", "Bob"})
	g1.Player(0).Score = 3
	g1.Player(0).Wallet[cards.Purple] = 2
	g1.Player(1).Score = 1

	g2 := mkGame(t, []string{"Amy", "Cam"})
	g2.Player(0).Score = 2
	g2.Player(0).Wallet[cards.Wild] = 1

	rows := Aggregate([]*engine.Game{g1, g2})
	if len(rows) != 3 {
		t.Fatalf("expected 3 unique players, got %d: %+v", len(rows), rows)
	}

	var amy *Row
	for i := range rows {
		if rows[i].Name == "Amy" {
			amy = &rows[i]
		}
	}
	if amy == nil {
		t.Fatal("expected an Amy row")
	}
	if amy.Points != 5 || amy.Tokens != 3 {
		t.Fatalf("expected Amy to have 5 points and 3 tokens, got %+v", amy)
	}
	// Amy has the most points, so she must sort first.
	if rows[0].Name != "Amy" {
		t.Fatalf("expected Amy to sort first, got %+v", rows)
	}
}

func TestAggregateBreaksTiesByTokensAscending(t *testing.T) {
	g := mkGame(t, []string{"Amy", "Bob"})
	g.Player(0).Score = 5
	g.Player(0).Wallet[cards.Purple] = 3
	g.Player(1).Score = 5
	g.Player(1).Wallet[cards.Purple] = 1

	rows := Aggregate([]*engine.Game{g})
	if rows[0].Name != "Bob" || rows[1].Name != "Amy" {
		t.Fatalf("expected Bob (fewer tokens) to rank above Amy, got %+v", rows)
	}
}

func TestWriteCSVFormat(t *testing.T) {
	rows := []Row{{Name: "Amy", Tokens: 3, Points: 5}}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	want := "Player Name,Total Tokens,Total Points\nAmy,3,5\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
