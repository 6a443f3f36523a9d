package delivery

import "postbase-backend/pkg/validation"

var registerSchema = validation.New(
	validation.Field{Name: "email", Label: "Email", Type: validation.String, Required: true, Email: true},
	validation.Field{Name: "password", Label: "Password", Type: validation.String, Required: true, Min: 6, Max: 128},
	validation.Field{Name: "firstName", Label: "First name", Type: validation.String, Required: true, Min: 2, Max: 50},
	validation.Field{Name: "lastName", Label: "Last name", Type: validation.String, Required: true, Min: 2, Max: 50},
)

var loginSchema = validation.New(
	validation.Field{Name: "email", Label: "Email", Type: validation.String, Required: true, Email: true},
	validation.Field{Name: "password", Label: "Password", Type: validation.String, Required: true},
)

var refreshSchema = validation.New(
	validation.Field{Name: "refreshToken", Label: "Refresh token", Type: validation.String, Required: true},
)
