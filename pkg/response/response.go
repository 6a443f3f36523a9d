package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Body is the uniform success envelope.
type Body struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Meta      any    `json:"meta,omitempty"`
}

// ErrorBody is the uniform error envelope.
type ErrorBody struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Details    any    `json:"details,omitempty"`
}

// OK writes a 200 success envelope.
func OK(c *gin.Context, message string, data any) {
	write(c, http.StatusOK, message, data, nil)
}

// Created writes a 201 success envelope.
func Created(c *gin.Context, message string, data any) {
	write(c, http.StatusCreated, message, data, nil)
}

// OKWithMeta writes a 200 success envelope with a meta section.
func OKWithMeta(c *gin.Context, message string, data, meta any) {
	write(c, http.StatusOK, message, data, meta)
}

func write(c *gin.Context, status int, message string, data, meta any) {
	c.JSON(status, Body{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
		Meta:      meta,
	})
}
