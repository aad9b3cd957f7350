package model

import "testing"

func TestEncodeSeats(t *testing.T) {
	tests := []struct {
		name  string
		seats []int
		want  string
	}{
		{"empty", nil, ""},
		{"single", []int{7}, "7"},
		{"already sorted", []int{1, 2, 3}, "1,2,3"},
		{"unsorted input is normalized", []int{4, 1, 12}, "1,4,12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeSeats(tt.seats); got != tt.want {
				t.Errorf("EncodeSeats(%v) = %q, want %q", tt.seats, got, tt.want)
			}
		})
	}
}

func TestEncodeSeats_DoesNotMutateInput(t *testing.T) {
	seats := []int{3, 1, 2}
	EncodeSeats(seats)
	if seats[0] != 3 || seats[1] != 1 || seats[2] != 2 {
		t.Errorf("input slice was mutated: %v", seats)
	}
}

func TestDecodeSeats(t *testing.T) {
	seats, err := DecodeSeats("1,4,12")
	if err != nil {
		t.Fatalf("DecodeSeats: %v", err)
	}
	want := []int{1, 4, 12}
	if len(seats) != len(want) {
		t.Fatalf("got %v, want %v", seats, want)
	}
	for i := range want {
		if seats[i] != want[i] {
			t.Errorf("seat %d = %d, want %d", i, seats[i], want[i])
		}
	}
}

func TestDecodeSeats_Empty(t *testing.T) {
	seats, err := DecodeSeats("")
	if err != nil {
		t.Fatalf("DecodeSeats(\"\"): %v", err)
	}
	if len(seats) != 0 {
		t.Errorf("got %v, want empty", seats)
	}
}

func TestDecodeSeats_Invalid(t *testing.T) {
	for _, encoded := range []string{"1,x,3", "0", "-2,3", "1,,2"} {
		if _, err := DecodeSeats(encoded); err == nil {
			t.Errorf("DecodeSeats(%q) succeeded, want error", encoded)
		}
	}
}
