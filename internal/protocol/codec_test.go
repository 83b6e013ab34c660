package protocol

import (
	"testing"

	"github.com/kethomassen/austerity/internal/cards"
)

// TestRoundTrip checks P8: encode(decode(line)) == line for one
// well-formed example of every message kind.
func TestRoundTrip(t *testing.T) {
	card := cards.Card{Discount: cards.Red, Value: 3, Price: cards.Vector{1, 2, 0, 4}}
	vec := cards.Vector{1, 1, 1, 0}
	wallet := [5]int{2, 0, 1, 0, 3}

	lines := []string{
		EncodeRid("g", 1, 0),
		EncodePlayInfo(0, 2),
		EncodeTokens(3),
		EncodeNewCard(card),
		EncodePurchased(1, 2, vec, 1),
		EncodeTook(0, vec),
		EncodeWildBroadcast(1),
		EncodePlayerSnapshot(1, 5, vec, wallet),
		EncodeDoWhat(),
		EncodeDisco(0),
		EncodeInvalid(1),
		EncodeEOG(),
		EncodeYes(),
		EncodeNo(),
		EncodePlayAuth("secret"),
		EncodeReconnectAuth("secret"),
		EncodeScoresAuth(),
		EncodePurchaseReq(2, vec, 1),
		EncodeTakeReq(vec),
		EncodeWildReq(),
	}

	for _, line := range lines {
		msg, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q): %v", line, err)
		}
		if msg.Kind == KindUnknown {
			t.Fatalf("Decode(%q) returned KindUnknown", line)
		}
		got := reencode(t, msg)
		if got != line {
			t.Fatalf("round trip mismatch: encoded %q, decoded+reencoded %q", line, got)
		}
	}
}

func reencode(t *testing.T, m Message) string {
	t.Helper()
	switch m.Kind {
	case KindRid:
		return EncodeRid(m.GameName, m.GameCounter, m.Seat)
	case KindPlayInfo:
		return EncodePlayInfo(m.Seat, m.TotalPlayers)
	case KindTokens:
		return EncodeTokens(m.InitialTokens)
	case KindNewCard:
		return EncodeNewCard(m.Card)
	case KindPurchased:
		return EncodePurchased(m.Seat, m.CardIndex, m.Real, m.Wild)
	case KindTook:
		return EncodeTook(m.Seat, m.Real)
	case KindWild:
		return EncodeWildBroadcast(m.Seat)
	case KindPlayerSnapshot:
		return EncodePlayerSnapshot(m.Seat, m.Score, m.Discount, m.Wallet)
	case KindDoWhat:
		return EncodeDoWhat()
	case KindDisco:
		return EncodeDisco(m.Seat)
	case KindInvalid:
		return EncodeInvalid(m.Seat)
	case KindEOG:
		return EncodeEOG()
	case KindYes:
		return EncodeYes()
	case KindNo:
		return EncodeNo()
	case KindPlayAuth:
		return EncodePlayAuth(m.Key)
	case KindReconnectAuth:
		return EncodeReconnectAuth(m.Key)
	case KindScoresAuth:
		return EncodeScoresAuth()
	case KindPurchaseReq:
		return EncodePurchaseReq(m.CardIndex, m.Real, m.Wild)
	case KindTakeReq:
		return EncodeTakeReq(m.Real)
	case KindWildReq:
		return EncodeWildReq()
	default:
		t.Fatalf("unhandled kind %v", m.Kind)
		return ""
	}
}

func TestDecodeRejectsTrailingWhitespace(t *testing.T) {
	if _, err := Decode("dowhat "); err == nil {
		t.Fatal("expected trailing whitespace to be rejected")
	}
}

func TestDecodeRejectsUnknownPrefix(t *testing.T) {
	if _, err := Decode("flibbertigibbet"); err == nil {
		t.Fatal("expected unrecognised message to be rejected")
	}
}

func TestDecodeDistinguishesPlayFromPlayerAndPlayinfo(t *testing.T) {
	msg, err := Decode("playsecret")
	if err != nil || msg.Kind != KindPlayAuth || msg.Key != "secret" {
		t.Fatalf("expected play auth with key 'secret', got %+v, err=%v", msg, err)
	}
	msg, err = Decode("playinfoA/2")
	if err != nil || msg.Kind != KindPlayInfo {
		t.Fatalf("expected playinfo, got %+v, err=%v", msg, err)
	}
	msg, err = Decode("playerA:0:d=0,0,0,0:t=0,0,0,0,0")
	if err != nil || msg.Kind != KindPlayerSnapshot {
		t.Fatalf("expected player snapshot, got %+v, err=%v", msg, err)
	}
}

func TestDecodeDistinguishesPurchaseFromPurchased(t *testing.T) {
	msg, err := Decode("purchase0:1,0,0,0,0")
	if err != nil || msg.Kind != KindPurchaseReq {
		t.Fatalf("expected purchase request, got %+v, err=%v", msg, err)
	}
	msg, err = Decode("purchasedA:0:1,0,0,0,0")
	if err != nil || msg.Kind != KindPurchased {
		t.Fatalf("expected purchased broadcast, got %+v, err=%v", msg, err)
	}
}

func TestDecodeDistinguishesWildRequestFromBroadcast(t *testing.T) {
	msg, err := Decode("wild")
	if err != nil || msg.Kind != KindWildReq {
		t.Fatalf("expected wild request, got %+v, err=%v", msg, err)
	}
	msg, err = Decode("wildB")
	if err != nil || msg.Kind != KindWild || msg.Seat != 1 {
		t.Fatalf("expected wild broadcast for seat 1, got %+v, err=%v", msg, err)
	}
}
