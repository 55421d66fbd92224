package domain

// NodeKind identifies which node-description variant a document entry decodes into.
type NodeKind uint8

const (
	// KindNode is the base variant. Every unrecognized entry resolves to it.
	KindNode NodeKind = iota
	// KindGameObject is selected for game-object entries and carries a name.
	KindGameObject
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case KindGameObject:
		return "GameObject"
	default:
		return "Node"
	}
}

// GameObjectClassID is the class identifier Unity writes in the header of game-object documents.
const GameObjectClassID = 1

// NodeDescription is the typed summary of one keyed entry parsed from a document.
type NodeDescription struct {
	Kind              NodeKind
	Key               NodeKey
	ClassID           int
	FileID            int64
	Stripped          bool
	SerializedVersion int
	// Name is only set for KindGameObject.
	Name string
}

// Document is one raw, not yet decoded document of a scene stream.
type Document struct {
	// Index is the zero-based position of the document in the stream.
	Index    int
	ClassID  int
	FileID   int64
	Stripped bool
	// Line is the one-based line number of the document marker.
	Line int
	Body []byte
}
