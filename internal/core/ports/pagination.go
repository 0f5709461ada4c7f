package ports

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page selects a 1-based page of results. The zero value is normalised to the
// first page with DefaultPageSize.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page to valid bounds.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Metadata describes where a page sits in the full result set.
type Metadata struct {
	CurrentPage  int
	PageSize     int
	FirstPage    int
	LastPage     int
	TotalRecords int64
}

// CalculateMetadata derives pagination metadata. An empty result yields the zero Metadata.
// With 12 records and a page size of 5 the last page is ceil(12/5) = 3.
func CalculateMetadata(total int64, p Page) Metadata {
	if total == 0 {
		return Metadata{}
	}
	return Metadata{
		CurrentPage:  p.Number,
		PageSize:     p.Size,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(total) / float64(p.Size))),
		TotalRecords: total,
	}
}
