package lane

import "testing"

func TestShuffles(t *testing.T) {
	a := Of(0, 1, 2, 3)
	b := Of(10, 11, 12, 13)

	tests := []struct {
		name string
		got  F32x4
		want F32x4
	}{
		{"Broadcast", Broadcast(a, 2), Of(2, 2, 2, 2)},
		{"InterleaveLower", InterleaveLower(a, b), Of(0, 10, 1, 11)},
		{"InterleaveUpper", InterleaveUpper(a, b), Of(2, 12, 3, 13)},
		{"ConcatLowerLower", ConcatLowerLower(a, b), Of(0, 1, 10, 11)},
		{"ConcatUpperUpper", ConcatUpperUpper(a, b), Of(2, 3, 12, 13)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestTranspose4x4(t *testing.T) {
	r0 := Of(1, 2, 3, 4)
	r1 := Of(5, 6, 7, 8)
	r2 := Of(9, 10, 11, 12)
	r3 := Of(13, 14, 15, 16)

	c0, c1, c2, c3 := Transpose4x4(r0, r1, r2, r3)
	want := [4]F32x4{
		Of(1, 5, 9, 13),
		Of(2, 6, 10, 14),
		Of(3, 7, 11, 15),
		Of(4, 8, 12, 16),
	}
	got := [4]F32x4{c0, c1, c2, c3}
	if got != want {
		t.Errorf("Transpose4x4: got %v, want %v", got, want)
	}

	// Transposing twice is the identity.
	b0, b1, b2, b3 := Transpose4x4(c0, c1, c2, c3)
	if [4]F32x4{b0, b1, b2, b3} != [4]F32x4{r0, r1, r2, r3} {
		t.Errorf("Transpose4x4 twice: got %v", [4]F32x4{b0, b1, b2, b3})
	}
}
