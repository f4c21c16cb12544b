package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMappingID(t *testing.T) {
	id, err := NewMappingID()
	require.NoError(t, err)

	assert.Len(t, id, len(mappingIDPrefix)+mappingIDLength)
	assert.True(t, IsMappingID(id))

	other, err := NewMappingID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestIsMappingID(t *testing.T) {
	assert.True(t, IsMappingID("map_abc123def456"))
	assert.False(t, IsMappingID("abc123def456"))
	assert.False(t, IsMappingID("map_ABC123DEF456"))
	assert.False(t, IsMappingID("map_short"))
	assert.False(t, IsMappingID(""))
}
