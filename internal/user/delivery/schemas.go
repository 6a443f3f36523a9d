package delivery

import "postbase-backend/pkg/validation"

var updateProfileSchema = validation.New(
	validation.Field{Name: "firstName", Label: "First name", Type: validation.String, Min: 2, Max: 50},
	validation.Field{Name: "lastName", Label: "Last name", Type: validation.String, Min: 2, Max: 50},
	validation.Field{Name: "email", Label: "Email", Type: validation.String, Email: true},
)

var listUsersSchema = validation.New(
	validation.Field{Name: "page", Label: "Page", Type: validation.Int, Min: 1, Default: 1},
	validation.Field{Name: "limit", Label: "Limit", Type: validation.Int, Min: 1, Max: 100, Default: 10},
	validation.Field{Name: "search", Label: "Search query", Type: validation.String, Max: 100},
)

var userIDSchema = validation.New(
	validation.Field{Name: "id", Label: "User ID", Type: validation.String, Required: true, UUID: true},
)
