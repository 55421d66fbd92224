package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scenecache/internal/core/domain"
)

func TestNodeKey(t *testing.T) {
	k1 := domain.NewNodeKey("Transform")
	k2 := domain.NewNodeKey("Transform")

	assert.Equal(t, k1, k2, "identical keys share one handle")
	assert.Equal(t, "Transform", k1.String())
	assert.False(t, k1.IsZero())
}

func TestNodeKey_Zero(t *testing.T) {
	var k domain.NodeKey

	assert.True(t, k.IsZero())
	assert.Empty(t, k.String())
}
