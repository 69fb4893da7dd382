package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Normalize(3, 25)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestNormalizeClampsInvalidValues(t *testing.T) {
	p := Normalize(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = Normalize(-5, -1)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = Normalize(2, 500)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, MaxLimit, p.Offset)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(Normalize(2, 10), 45)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, int64(45), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}

func TestGetMetaEdges(t *testing.T) {
	meta := GetMeta(Normalize(1, 10), 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)

	meta = GetMeta(Normalize(3, 10), 30)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)
}
