package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
	}{
		{"exact fit", 48, 1, 24, 2},
		{"partial last page", 49, 1, 24, 3},
		{"single page", 5, 1, 24, 1},
		{"empty", 0, 1, 24, 0},
		{"limit one", 3, 2, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Page: tt.page, Limit: tt.limit}
			p := q.Paginate(tt.total)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Query{Page: 1, Limit: 24}.Offset())
	assert.Equal(t, 24, Query{Page: 2, Limit: 24}.Offset())
	assert.Equal(t, 20, Query{Page: 3, Limit: 10}.Offset())
}

func TestNormalize(t *testing.T) {
	q := Query{Page: 0, Limit: 0}.Normalize(12)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 12, q.Limit)

	q = Query{Page: 3, Limit: 50}.Normalize(12)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 50, q.Limit)

	q = Query{Page: -2, Limit: -1}.Normalize(10)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestFiltered(t *testing.T) {
	// The ALL sentinel is equivalent to omitting the filter entirely
	assert.False(t, Query{Filter: ""}.Filtered())
	assert.False(t, Query{Filter: FilterAll}.Filtered())
	assert.True(t, Query{Filter: "PENDING"}.Filtered())
	assert.True(t, Query{Filter: "ELECTRONICS"}.Filtered())
}

func TestWindowBound(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	_, ok := WindowAll.Bound(now)
	assert.False(t, ok, "ALL imposes no bound")
	_, ok = Window("").Bound(now)
	assert.False(t, ok, "unset imposes no bound")

	bound, ok := WindowToday.Bound(now)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), bound)

	bound, ok = Window7Days.Bound(now)
	assert.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), bound)

	bound, ok = Window30Days.Bound(now)
	assert.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -30), bound)
}

func TestWindowValid(t *testing.T) {
	assert.True(t, WindowAll.Valid())
	assert.True(t, WindowToday.Valid())
	assert.True(t, Window7Days.Valid())
	assert.True(t, Window30Days.Valid())
	assert.True(t, Window("").Valid())
	assert.False(t, Window("90_DAYS").Valid())
}
