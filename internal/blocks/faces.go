package blocks

import "strings"

// facePattern maps a raw face-name fragment to its canonical face.
// Patterns are tried in order; the first fragment contained in the
// lowercased raw name wins.
type facePattern struct {
	fragment string
	face     Face
}

var facePatterns = []facePattern{
	{"top", FaceTop},
	{"up", FaceTop},
	{"bottom", FaceBottom},
	{"down", FaceBottom},
	{"front", FaceFront},
	{"north", FaceFront},
	{"back", FaceBack},
	{"south", FaceBack},
	{"left", FaceLeft},
	{"west", FaceLeft},
	{"right", FaceRight},
	{"east", FaceRight},
}

// CanonicalFace simplifies a raw face name ("side_north", "Up", ...) to
// one of the six canonical faces. ok is false for unrecognized names.
func CanonicalFace(raw string) (Face, bool) {
	lower := strings.ToLower(raw)
	for _, p := range facePatterns {
		if strings.Contains(lower, p.fragment) {
			return p.face, true
		}
	}
	return "", false
}

// ParseFace validates a canonical face name from config or CLI input.
func ParseFace(s string) (Face, bool) {
	for _, f := range Faces {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
