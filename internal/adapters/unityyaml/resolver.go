package unityyaml

import "go.trai.ch/scenecache/internal/core/domain"

// gameObjectKey is the top-level key Unity writes for game-object entries.
const gameObjectKey = "GameObject"

// Resolve selects the node variant for a document entry.
// The key is authoritative; the header class ID covers entries written under an
// unexpected key. Unrecognized entries resolve to the base variant.
func Resolve(key string, classID int) domain.NodeKind {
	if key == gameObjectKey || classID == domain.GameObjectClassID {
		return domain.KindGameObject
	}
	return domain.KindNode
}
