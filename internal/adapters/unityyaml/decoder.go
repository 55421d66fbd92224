// Package unityyaml reads Unity-style multi-document YAML scene files.
package unityyaml

import (
	"bytes"
	"errors"
	"io"

	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/scenecache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SceneDecoder = (*Decoder)(nil)

// nodeRecord is the base record every entry decodes into.
type nodeRecord struct {
	SerializedVersion int `yaml:"serializedVersion"`
}

type gameObjectRecord struct {
	SerializedVersion int    `yaml:"serializedVersion"`
	Name              string `yaml:"m_Name"`
}

// Decoder implements ports.SceneDecoder on top of gopkg.in/yaml.v3.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// NewStream validates the stream header of r and returns its documents.
func (d *Decoder) NewStream(r io.Reader) (ports.DocumentStream, error) {
	return NewStream(r)
}

// Decode resolves and decodes every top-level entry of doc, in document order.
// Fields the records do not know about are ignored.
func (d *Decoder) Decode(doc *domain.Document) ([]domain.NodeDescription, error) {
	if len(bytes.TrimSpace(doc.Body)) == 0 {
		return nil, nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal(doc.Body, &root); err != nil {
		return nil, decodeError(doc, zerr.Wrap(err, "invalid YAML"))
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	body := root.Content[0]
	if isNull(body) {
		return nil, nil
	}
	if body.Kind != yaml.MappingNode {
		return nil, decodeError(doc, zerr.New("document is not a mapping"))
	}

	nodes := make([]domain.NodeDescription, 0, len(body.Content)/2)
	for i := 0; i+1 < len(body.Content); i += 2 {
		keyNode, valueNode := body.Content[i], body.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, decodeError(doc, zerr.New("entry key is not a scalar"))
		}

		node, err := decodeEntry(doc, keyNode.Value, valueNode)
		if err != nil {
			return nil, decodeError(doc, zerr.With(err, "key", keyNode.Value))
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeEntry(doc *domain.Document, key string, value *yaml.Node) (domain.NodeDescription, error) {
	node := domain.NodeDescription{
		Kind:     Resolve(key, doc.ClassID),
		Key:      domain.NewNodeKey(key),
		ClassID:  doc.ClassID,
		FileID:   doc.FileID,
		Stripped: doc.Stripped,
	}

	if value.Kind != yaml.MappingNode && !isNull(value) {
		return node, zerr.New("entry value is not a mapping")
	}

	switch node.Kind {
	case domain.KindGameObject:
		var rec gameObjectRecord
		if err := value.Decode(&rec); err != nil {
			return node, zerr.Wrap(err, "invalid game object record")
		}
		node.SerializedVersion = rec.SerializedVersion
		node.Name = rec.Name
	default:
		var rec nodeRecord
		if err := value.Decode(&rec); err != nil {
			return node, zerr.Wrap(err, "invalid node record")
		}
		node.SerializedVersion = rec.SerializedVersion
	}
	return node, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func decodeError(doc *domain.Document, err error) error {
	return errors.Join(domain.ErrFormat, zerr.With(zerr.With(err, "document", doc.Index), "line", doc.Line))
}
