package delivery

import "postbase-backend/pkg/validation"

var listPostsSchema = validation.New(
	validation.Field{Name: "page", Label: "Page", Type: validation.Int, Min: 1, Default: 1},
	validation.Field{Name: "limit", Label: "Limit", Type: validation.Int, Min: 1, Max: 100, Default: 10},
	validation.Field{Name: "search", Label: "Search query", Type: validation.String, Max: 100},
	validation.Field{Name: "category", Label: "Category", Type: validation.String, Max: 50},
)

var postIDSchema = validation.New(
	validation.Field{Name: "id", Label: "Post ID", Type: validation.String, Required: true, UUID: true},
)

var createPostSchema = validation.New(
	validation.Field{Name: "title", Label: "Title", Type: validation.String, Required: true, Min: 3, Max: 200},
	validation.Field{Name: "content", Label: "Content", Type: validation.String, Required: true, Min: 10},
	validation.Field{Name: "category", Label: "Category", Type: validation.String, Max: 50},
	validation.Field{Name: "tags", Label: "Tags", Type: validation.StringSlice, MaxItems: 10, MaxItemLen: 30},
	validation.Field{Name: "published", Label: "Published", Type: validation.Bool, Default: false},
)

var updatePostSchema = validation.New(
	validation.Field{Name: "title", Label: "Title", Type: validation.String, Min: 3, Max: 200},
	validation.Field{Name: "content", Label: "Content", Type: validation.String, Min: 10},
	validation.Field{Name: "category", Label: "Category", Type: validation.String, Max: 50},
	validation.Field{Name: "tags", Label: "Tags", Type: validation.StringSlice, MaxItems: 10, MaxItemLen: 30},
	validation.Field{Name: "published", Label: "Published", Type: validation.Bool},
)
