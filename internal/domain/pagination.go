package domain

// PaginationRequest selects one page of a listing.
type PaginationRequest struct {
	PageNumber int `form:"page" json:"page"`
	PageSize   int `form:"page_size" json:"page_size"`
}

// Skip returns the zero-based row offset for the requested page.
func (r PaginationRequest) Skip() int {
	if r.PageNumber < 1 {
		return 0
	}
	return (r.PageNumber - 1) * r.PageSize
}

// PagedResult wraps one page of contacts. TotalCount reflects the full
// row count, not just the returned page.
type PagedResult struct {
	Items      []ContactDTO `json:"items"`
	TotalCount int64        `json:"total_count"`
	PageNumber int          `json:"page_number"`
	PageSize   int          `json:"page_size"`
}
