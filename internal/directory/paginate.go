package directory

import "github.com/celerix-dev/celerix-directory/pkg/schema"

// Pagination defaults applied when the caller sends nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageResult is a deterministic slice of the ordered collection. Items hold
// full records; Public projects the wire shape.
type PageResult struct {
	Items      []schema.UserRecord
	Page       int
	Limit      int
	TotalItems int
	TotalPages int
}

// Public returns the redacted wire representation of the page.
func (p PageResult) Public() schema.Page {
	items := make([]schema.PublicUser, 0, len(p.Items))
	for _, u := range p.Items {
		items = append(items, u.Public())
	}
	return schema.Page{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

// paginate slices the collection. Bad pagination input never errors: it is
// silently normalized to the defaults, and an out-of-range page yields an
// empty items list.
func paginate(users []schema.UserRecord, page, limit int) PageResult {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	totalItems := len(users)
	totalPages := (totalItems + limit - 1) / limit

	startIdx := (page - 1) * limit
	endIdx := startIdx + limit
	if startIdx > totalItems {
		startIdx = totalItems
	}
	if endIdx > totalItems {
		endIdx = totalItems
	}

	items := make([]schema.UserRecord, endIdx-startIdx)
	copy(items, users[startIdx:endIdx])

	return PageResult{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
