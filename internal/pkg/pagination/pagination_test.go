package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams_Clamps(t *testing.T) {
	p := NewParams(0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = NewParams(3, 1000)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Slice(items, NewParams(2, 2))
	assert.Equal(t, []int{3, 4}, page)
	assert.Equal(t, int64(5), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	page, meta = Slice(items, NewParams(3, 2))
	assert.Equal(t, []int{5}, page)
	assert.False(t, meta.HasNext)

	page, _ = Slice(items, NewParams(9, 2))
	assert.Empty(t, page)
	assert.NotNil(t, page)
}

func TestSlice_HugePage(t *testing.T) {
	p := NewParams(92233720368547760, 100)
	assert.Equal(t, MaxPage, p.Page)
	assert.Positive(t, p.Offset)

	page, meta := Slice([]int{1, 2, 3}, p)
	assert.Empty(t, page)
	assert.False(t, meta.HasNext)

	page, _ = Slice([]int{1, 2, 3}, &Params{Page: 2, Limit: 10, Offset: -5})
	assert.Empty(t, page)
}
