package dto

type CreatePostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Published bool     `json:"published"`
}

// UpdatePostRequest carries a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Category  *string  `json:"category"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}
