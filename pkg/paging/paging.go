package paging

// Params is a validated page/limit pair. Validation guarantees page >= 1 and
// 1 <= limit <= 100 before a Params is built.
type Params struct {
	Page  int
	Limit int
}

// Offset is the number of rows to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result describes one page of a listing alongside the full match count.
type Result struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewResult computes the page count as ceil(total/limit).
func NewResult(p Params, total int64) Result {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Result{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}
