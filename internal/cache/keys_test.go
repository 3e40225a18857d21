package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("taxonomy", "titles", "all")
	assert.Equal(t, "examdrill:taxonomy:titles:all", key)

	keyWithParams := GenerateCacheKey("questions", "stats", "CISSP", "v1", "full")
	assert.Equal(t, "examdrill:questions:stats:CISSP:v1_full", keyWithParams)
}

func TestTitlesKey(t *testing.T) {
	assert.Equal(t, "examdrill:taxonomy:titles:all", TitlesKey())
}
