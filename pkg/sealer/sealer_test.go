package sealer

import (
	"crypto/rand"
	"encoding/base64"
	"testing"
)

func testKey(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatal(err)
	}
	return base64.StdEncoding.EncodeToString(key)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	s, err := New(testKey(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, seat := range []int{1, 7, 12} {
		token, err := s.SealSeat(seat)
		if err != nil {
			t.Fatalf("SealSeat(%d): %v", seat, err)
		}
		got, err := s.OpenSeat(token)
		if err != nil {
			t.Fatalf("OpenSeat: %v", err)
		}
		if got != seat {
			t.Errorf("round trip seat %d -> %d", seat, got)
		}
	}
}

func TestOpenSeat_RejectsTampering(t *testing.T) {
	s, err := New(testKey(t))
	if err != nil {
		t.Fatal(err)
	}

	token, err := s.SealSeat(3)
	if err != nil {
		t.Fatal(err)
	}

	raw, _ := base64.RawURLEncoding.DecodeString(token)
	raw[len(raw)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := s.OpenSeat(tampered); err == nil {
		t.Error("tampered token was accepted")
	}
}

func TestOpenSeat_RejectsForeignKey(t *testing.T) {
	a, _ := New(testKey(t))
	b, _ := New(testKey(t))

	token, err := a.SealSeat(5)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.OpenSeat(token); err == nil {
		t.Error("token sealed under a different key was accepted")
	}
}

func TestOpenSeat_Garbage(t *testing.T) {
	s, _ := New(testKey(t))
	for _, token := range []string{"", "x", "!!!!", "AAAA"} {
		if _, err := s.OpenSeat(token); err == nil {
			t.Errorf("OpenSeat(%q) succeeded, want error", token)
		}
	}
}

func TestNew_BadKey(t *testing.T) {
	if _, err := New("not base64!!"); err == nil {
		t.Error("New accepted a non-base64 key")
	}
	short := base64.StdEncoding.EncodeToString([]byte("too-short"))
	if _, err := New(short); err == nil {
		t.Error("New accepted a short key")
	}
}
