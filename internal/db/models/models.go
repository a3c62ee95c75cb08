package models

const (
	// DefaultPageSize is the number of rows a listing call returns when the
	// caller does not ask for a specific page size
	DefaultPageSize = 10
	// MaxPageSize is the largest page size a caller may request
	MaxPageSize = 100
)

// ListOptions represents pagination and filtering options for list operations
type ListOptions struct {
	Page          int  `json:"page"`      // 1-based page number
	PageSize      int  `json:"page_size"` // Number of items per page
	IncludeHidden bool `json:"include_hidden"`
}

// Normalize clamps the options into their valid ranges.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
}

// Offset returns the number of rows to skip for the selected page.
func (o *ListOptions) Offset() int {
	return (o.Page - 1) * o.PageSize
}

// Page is a single page of a listing together with its pagination metadata.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// NewPage assembles a Page value from a query result.
func NewPage[T any](items []T, opts *ListOptions, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Total:    total,
	}
}
