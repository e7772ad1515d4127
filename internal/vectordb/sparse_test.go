package vectordb

import "testing"

func TestEncodeSparse_Deterministic(t *testing.T) {
	i1, v1 := encodeSparse("func Greet(name string) string")
	i2, v2 := encodeSparse("func Greet(name string) string")

	if len(i1) != len(i2) || len(v1) != len(v2) {
		t.Fatalf("expected identical encodings for identical text, got %v/%v vs %v/%v", i1, v1, i2, v2)
	}
	counts := map[uint32]float32{}
	for i, idx := range i1 {
		counts[idx] = v1[i]
	}
	for i, idx := range i2 {
		if counts[idx] != v2[i] {
			t.Fatalf("dimension %d mismatch between identical encodings", idx)
		}
	}
}

func TestEncodeSparse_RepeatedTokenAccumulatesFrequency(t *testing.T) {
	indices, values := encodeSparse("greet greet greet name")
	if len(indices) != 2 {
		t.Fatalf("expected 2 distinct dimensions (greet, name), got %d", len(indices))
	}
	var sawThree bool
	for _, v := range values {
		if v == 3 {
			sawThree = true
		}
	}
	if !sawThree {
		t.Fatalf("expected the repeated token's frequency to be 3, got %v", values)
	}
}

func TestEncodeSparse_EmptyText(t *testing.T) {
	indices, values := encodeSparse("   \n\t  ")
	if indices != nil || values != nil {
		t.Fatalf("expected nil/nil for text with no tokens, got %v/%v", indices, values)
	}
}

func TestPointUUIDFor_PassesThroughValidUUID(t *testing.T) {
	id := "123e4567-e89b-12d3-a456-426614174000"
	if got := pointUUIDFor(id); got != id {
		t.Fatalf("expected a valid UUID to pass through unchanged, got %q", got)
	}
}

func TestPointUUIDFor_DeterministicForContentAddressedID(t *testing.T) {
	id := "deadbeefcafef00d"
	u1 := pointUUIDFor(id)
	u2 := pointUUIDFor(id)
	if u1 != u2 {
		t.Fatalf("expected deterministic UUID derivation, got %q vs %q", u1, u2)
	}
	if u1 == id {
		t.Fatal("expected a non-UUID content id to be mapped to a different UUID string")
	}
}
