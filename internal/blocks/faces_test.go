package blocks

import "testing"

func TestCanonicalFace(t *testing.T) {
	tests := []struct {
		raw  string
		want Face
		ok   bool
	}{
		{"top", FaceTop, true},
		{"Up", FaceTop, true},
		{"side_north", FaceFront, true},
		{"south", FaceBack, true},
		{"bottom_overlay", FaceBottom, true},
		{"down", FaceBottom, true},
		{"west", FaceLeft, true},
		{"EAST", FaceRight, true},
		{"weird", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := CanonicalFace(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalFace(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseFace(t *testing.T) {
	if _, ok := ParseFace("front"); !ok {
		t.Error("ParseFace(front) failed")
	}
	if _, ok := ParseFace("sideways"); ok {
		t.Error("ParseFace accepted an unknown face")
	}
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		id   int
		name string
		want bool
	}{
		{0, "Air", true},
		{3, "Stone Slab", true},
		{3, "Oak Slab Corner", true},
		{3, "Stone", false},
		{3, "slabstone", false}, // marker is case-sensitive
	}

	for _, tt := range tests {
		if got := Excluded(tt.id, tt.name); got != tt.want {
			t.Errorf("Excluded(%d, %q) = %v, want %v", tt.id, tt.name, got, tt.want)
		}
	}
}
