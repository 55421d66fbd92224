package artifact_test

import (
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scenecache/internal/adapters/artifact"
	"go.trai.ch/scenecache/internal/core/domain"
	"google.golang.org/protobuf/encoding/protowire"
)

func sampleCache() *domain.Cache {
	return &domain.Cache{
		Nodes: []domain.NodeDescription{
			{
				Kind:              domain.KindGameObject,
				Key:               domain.NewNodeKey("GameObject"),
				ClassID:           1,
				FileID:            1234567890123,
				SerializedVersion: 6,
				Name:              "Main Camera",
			},
			{
				Kind:              domain.KindNode,
				Key:               domain.NewNodeKey("Transform"),
				ClassID:           4,
				FileID:            -42,
				Stripped:          true,
				SerializedVersion: 2,
			},
			{Kind: domain.KindNode},
		},
		Status:    domain.StatusCompleted,
		Documents: 3,
		Source: domain.SourceInfo{
			Path:     "/scenes/main.unity",
			ModTime:  time.Unix(0, 1_700_000_000_123_456_789),
			Size:     4096,
			Checksum: 0xDEADBEEFCAFEBABE,
		},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	persistedAt := time.Unix(0, 1_700_000_100_000_000_001)
	want := sampleCache()

	got, gotAt, err := artifact.Decode(artifact.Encode(want, persistedAt))
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.True(t, persistedAt.Equal(gotAt))
}

func TestCodec_RoundTrip_Cancelled(t *testing.T) {
	want := &domain.Cache{
		Nodes:     []domain.NodeDescription{{Kind: domain.KindNode, Key: domain.NewNodeKey("A"), SerializedVersion: -1}},
		Status:    domain.StatusCancelled,
		Documents: 100,
	}

	got, _, err := artifact.Decode(artifact.Encode(want, time.Unix(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Cancelled())
}

func TestCodec_EmptyCache(t *testing.T) {
	got, at, err := artifact.Decode(artifact.Encode(&domain.Cache{}, time.Time{}))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.True(t, at.IsZero())
	assert.True(t, got.Source.ModTime.IsZero())
}

func TestCodec_Corruption(t *testing.T) {
	valid := artifact.Encode(sampleCache(), time.Unix(1, 0))

	mutate := func(f func([]byte) []byte) []byte {
		b := append([]byte(nil), valid...)
		return f(b)
	}

	tests := []struct {
		name    string
		data    []byte
		message string
	}{
		{name: "empty", data: nil, message: "truncated"},
		{name: "short", data: valid[:10], message: "truncated"},
		{name: "header only", data: valid[:5], message: "truncated"},
		{name: "wrong magic", data: mutate(func(b []byte) []byte { b[0] = 'X'; return b }), message: "magic"},
		{name: "future version", data: mutate(func(b []byte) []byte { b[4] = 9; return b }), message: "unsupported artifact version"},
		{name: "flipped body byte", data: mutate(func(b []byte) []byte { b[8] ^= 0xFF; return b }), message: "checksum mismatch"},
		{name: "flipped trailer byte", data: mutate(func(b []byte) []byte { b[len(b)-1] ^= 0x01; return b }), message: "checksum mismatch"},
		{name: "truncated body", data: mutate(func(b []byte) []byte { return b[:len(b)-12] }), message: "checksum mismatch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := artifact.Decode(tt.data)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

// sealed builds an artifact around an arbitrary body so that the checksum is valid.
func sealed(body []byte) []byte {
	out := append([]byte("SCNC"), 1)
	out = append(out, body...)
	return protowire.AppendFixed64(out, xxhash.Sum64(body))
}

func TestCodec_MalformedBodyWithValidChecksum(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "dangling tag", body: []byte{0x08}},
		{name: "overlong length", body: protowire.AppendTag(nil, 8, protowire.BytesType)},
		{name: "unknown status", body: protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 7)},
		{
			name: "unknown node kind",
			body: protowire.AppendBytes(
				protowire.AppendTag(nil, 8, protowire.BytesType),
				protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 5),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := artifact.Decode(sealed(tt.body))
			require.Error(t, err)
		})
	}
}

func TestCodec_SkipsUnknownFields(t *testing.T) {
	body := protowire.AppendTag(nil, 99, protowire.BytesType)
	body = protowire.AppendString(body, "from a newer writer")
	body = protowire.AppendTag(body, 2, protowire.VarintType)
	body = protowire.AppendVarint(body, 5)

	got, _, err := artifact.Decode(sealed(body))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Documents)
}
