package domain

type ListOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Meta struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

type ListResult[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

func CalculateMeta(total int64, page, limit int) *Meta {
	if limit <= 0 {
		limit = 10
	}
	if page <= 0 {
		page = 1
	}

	lastPage := int(total) / limit
	if int(total)%limit != 0 {
		lastPage++
	}
	if lastPage == 0 {
		lastPage = 1
	}

	return &Meta{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		LastPage:    lastPage,
	}
}

// Paginate returns the page of items selected by opts. Pages past the last
// one yield an empty slice.
func Paginate[T any](items []T, opts ListOptions) ListResult[T] {
	meta := CalculateMeta(int64(len(items)), opts.Page, opts.Limit)

	// Checked before multiplying so a huge page cannot overflow start.
	if meta.CurrentPage > meta.LastPage {
		return ListResult[T]{Data: []T{}, Meta: meta}
	}

	start := (meta.CurrentPage - 1) * meta.PerPage
	end := min(start+meta.PerPage, len(items))

	return ListResult[T]{
		Data: items[start:end],
		Meta: meta,
	}
}
