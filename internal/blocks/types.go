package blocks

// Face is one of the six canonical block faces.
type Face string

const (
	FaceTop    Face = "top"
	FaceBottom Face = "bottom"
	FaceFront  Face = "front"
	FaceBack   Face = "back"
	FaceLeft   Face = "left"
	FaceRight  Face = "right"
)

// Faces lists the canonical faces in a fixed order.
var Faces = []Face{FaceTop, FaceBottom, FaceFront, FaceBack, FaceLeft, FaceRight}

// TextureRef addresses one square tile: which atlas file and which
// tile position on it.
type TextureRef struct {
	File  int `json:"file"`
	Index int `json:"index"`
}

// BlockDef holds one block parsed from blocks.json. Faces maps the raw
// face name from the file (e.g. "side_north") to its texture reference.
type BlockDef struct {
	ID    int
	Name  string
	Faces map[string]TextureRef
}
