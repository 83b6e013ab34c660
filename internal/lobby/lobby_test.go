package lobby

import "testing"

func TestValidateNameRejectsCommaNewlineAndEmpty(t *testing.T) {
	cases := []string{"", "Bob,Amy", "Bob\nAmy"}
	for _, name := range cases {
		if err := ValidateName(name); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
	if err := ValidateName("Bob"); err != nil {
		t.Fatalf("expected a plain name to validate, got %v", err)
	}
}

func TestLobbyFullAtConfiguredPlayerCount(t *testing.T) {
	l := New("table", PortConfig{Tokens: 3, Points: 10, Players: 2})
	if l.Full() {
		t.Fatal("empty lobby must not be full")
	}
	l.Add(Joiner{Name: "Amy", JoinedAt: 0})
	if l.Full() {
		t.Fatal("lobby with one of two seats filled must not be full")
	}
	l.Add(Joiner{Name: "Bob", JoinedAt: 1})
	if !l.Full() {
		t.Fatal("lobby with both seats filled must report full")
	}
}

func TestSeatedOrdersAlphabeticallyThenByJoinOrder(t *testing.T) {
	l := New("table", PortConfig{Players: 3})
	l.Add(Joiner{Name: "Carl", JoinedAt: 0})
	l.Add(Joiner{Name: "Amy", JoinedAt: 1})
	l.Add(Joiner{Name: "Amy", JoinedAt: 2})

	seated := l.Seated()
	if len(seated) != 3 {
		t.Fatalf("expected 3 seated joiners, got %d", len(seated))
	}
	if seated[0].Name != "Amy" || seated[0].JoinedAt != 1 {
		t.Fatalf("expected the earlier-joined Amy to seat first, got %+v", seated[0])
	}
	if seated[1].Name != "Amy" || seated[1].JoinedAt != 2 {
		t.Fatalf("expected the later-joined Amy to seat second, got %+v", seated[1])
	}
	if seated[2].Name != "Carl" {
		t.Fatalf("expected Carl to seat last, got %+v", seated[2])
	}
}

func TestSeatedDoesNotMutateOriginalOrder(t *testing.T) {
	l := New("table", PortConfig{Players: 2})
	l.Add(Joiner{Name: "Zed", JoinedAt: 0})
	l.Add(Joiner{Name: "Amy", JoinedAt: 1})

	_ = l.Seated()
	if l.Joiners[0].Name != "Zed" {
		t.Fatal("Seated must not reorder the underlying Joiners slice")
	}
}
