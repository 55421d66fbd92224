package artifact

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scenecache/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/protobuf/encoding/protowire"
)

// Artifact layout: magic, format version, protobuf wire body, xxhash64 of the body (fixed64).
const (
	magic         = "SCNC"
	formatVersion = 1
	headerSize    = len(magic) + 1
	trailerSize   = 8
)

// Body fields.
const (
	fieldStatus         protowire.Number = 1
	fieldDocuments      protowire.Number = 2
	fieldPersistedAt    protowire.Number = 3
	fieldSourcePath     protowire.Number = 4
	fieldSourceModTime  protowire.Number = 5
	fieldSourceSize     protowire.Number = 6
	fieldSourceChecksum protowire.Number = 7
	fieldNode           protowire.Number = 8
)

// Node fields.
const (
	nodeKind              protowire.Number = 1
	nodeKey               protowire.Number = 2
	nodeClassID           protowire.Number = 3
	nodeFileID            protowire.Number = 4
	nodeStripped          protowire.Number = 5
	nodeSerializedVersion protowire.Number = 6
	nodeName              protowire.Number = 7
)

// Encode serializes cache together with the time it was persisted.
func Encode(cache *domain.Cache, persistedAt time.Time) []byte {
	body := make([]byte, 0, 64+len(cache.Nodes)*32)

	body = appendVarint(body, fieldStatus, uint64(cache.Status))
	body = appendVarint(body, fieldDocuments, uint64(cache.Documents))
	body = appendTime(body, fieldPersistedAt, persistedAt)
	if cache.Source.Path != "" {
		body = protowire.AppendTag(body, fieldSourcePath, protowire.BytesType)
		body = protowire.AppendString(body, cache.Source.Path)
	}
	body = appendTime(body, fieldSourceModTime, cache.Source.ModTime)
	body = appendVarint(body, fieldSourceSize, uint64(cache.Source.Size))
	if cache.Source.Checksum != 0 {
		body = protowire.AppendTag(body, fieldSourceChecksum, protowire.Fixed64Type)
		body = protowire.AppendFixed64(body, cache.Source.Checksum)
	}

	var node []byte
	for i := range cache.Nodes {
		node = appendNode(node[:0], &cache.Nodes[i])
		body = protowire.AppendTag(body, fieldNode, protowire.BytesType)
		body = protowire.AppendBytes(body, node)
	}

	out := make([]byte, 0, headerSize+len(body)+trailerSize)
	out = append(out, magic...)
	out = append(out, formatVersion)
	out = append(out, body...)
	return protowire.AppendFixed64(out, xxhash.Sum64(body))
}

func appendNode(b []byte, n *domain.NodeDescription) []byte {
	b = appendVarint(b, nodeKind, uint64(n.Kind))
	if !n.Key.IsZero() {
		b = protowire.AppendTag(b, nodeKey, protowire.BytesType)
		b = protowire.AppendString(b, n.Key.String())
	}
	b = appendVarint(b, nodeClassID, protowire.EncodeZigZag(int64(n.ClassID)))
	b = appendVarint(b, nodeFileID, protowire.EncodeZigZag(n.FileID))
	if n.Stripped {
		b = appendVarint(b, nodeStripped, 1)
	}
	b = appendVarint(b, nodeSerializedVersion, protowire.EncodeZigZag(int64(n.SerializedVersion)))
	if n.Name != "" {
		b = protowire.AppendTag(b, nodeName, protowire.BytesType)
		b = protowire.AppendString(b, n.Name)
	}
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendTime(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(t.UnixNano()))
}

// Decode parses an artifact produced by Encode.
// It returns the cache and the time it was persisted.
func Decode(data []byte) (*domain.Cache, time.Time, error) {
	if len(data) < headerSize+trailerSize {
		return nil, time.Time{}, zerr.With(zerr.New("artifact is truncated"), "size", len(data))
	}
	if string(data[:len(magic)]) != magic {
		return nil, time.Time{}, zerr.New("unknown artifact magic")
	}
	if v := data[len(magic)]; v != formatVersion {
		return nil, time.Time{}, zerr.With(zerr.New("unsupported artifact version"), "version", int(v))
	}

	body := data[headerSize : len(data)-trailerSize]
	sum, _ := protowire.ConsumeFixed64(data[len(data)-trailerSize:])
	if xxhash.Sum64(body) != sum {
		return nil, time.Time{}, zerr.New("artifact checksum mismatch")
	}

	cache := &domain.Cache{}
	var persistedAt time.Time
	err := consumeFields(body, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldStatus && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n >= 0 && v > uint64(domain.StatusCancelled) {
				return 0, zerr.With(zerr.New("unknown build status"), "status", strconv.FormatUint(v, 10))
			}
			cache.Status = domain.BuildStatus(v)
			return n, nil
		case num == fieldDocuments && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			cache.Documents = int(v)
			return n, nil
		case num == fieldPersistedAt && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			persistedAt = time.Unix(0, protowire.DecodeZigZag(v))
			return n, nil
		case num == fieldSourcePath && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			cache.Source.Path = v
			return n, nil
		case num == fieldSourceModTime && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			cache.Source.ModTime = time.Unix(0, protowire.DecodeZigZag(v))
			return n, nil
		case num == fieldSourceSize && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			cache.Source.Size = int64(v)
			return n, nil
		case num == fieldSourceChecksum && typ == protowire.Fixed64Type:
			v, n := protowire.ConsumeFixed64(b)
			cache.Source.Checksum = v
			return n, nil
		case num == fieldNode && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n, nil
			}
			node, err := decodeNode(v)
			if err != nil {
				return 0, zerr.With(err, "node", len(cache.Nodes))
			}
			cache.Nodes = append(cache.Nodes, node)
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	return cache, persistedAt, nil
}

func decodeNode(data []byte) (domain.NodeDescription, error) {
	var node domain.NodeDescription
	err := consumeFields(data, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == nodeKind && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n >= 0 && v > uint64(domain.KindGameObject) {
				return 0, zerr.With(zerr.New("unknown node kind"), "kind", strconv.FormatUint(v, 10))
			}
			node.Kind = domain.NodeKind(v)
			return n, nil
		case num == nodeKey && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n >= 0 {
				node.Key = domain.NewNodeKey(v)
			}
			return n, nil
		case num == nodeClassID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			node.ClassID = int(protowire.DecodeZigZag(v))
			return n, nil
		case num == nodeFileID && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			node.FileID = protowire.DecodeZigZag(v)
			return n, nil
		case num == nodeStripped && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			node.Stripped = v != 0
			return n, nil
		case num == nodeSerializedVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			node.SerializedVersion = int(protowire.DecodeZigZag(v))
			return n, nil
		case num == nodeName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			node.Name = v
			return n, nil
		default:
			return protowire.ConsumeFieldValue(num, typ, b), nil
		}
	})
	return node, err
}

// consumeFields walks the fields of a wire-format message. fn returns the number of
// bytes it consumed from b, or a negative protowire error code.
func consumeFields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return zerr.Wrap(protowire.ParseError(n), "invalid field tag")
		}
		b = b[n:]

		n, err := fn(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return zerr.With(zerr.Wrap(protowire.ParseError(n), "invalid field value"), "field", int(num))
		}
		b = b[n:]
	}
	return nil
}
