package validation

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"postbase-backend/pkg/apperror"
)

const (
	bodyKey   = "validated_body"
	queryKey  = "validated_query"
	paramsKey = "validated_params"
)

// Body validates the JSON request body against the schema and stores the
// cleaned result in the request context.
func Body(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			_ = c.Error(apperror.Validation("Request body must be valid JSON"))
			c.Abort()
			return
		}

		cleaned, err := schema.Apply(raw)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(bodyKey, cleaned)
		c.Next()
	}
}

// Query validates query parameters. Only parameters that are present get
// checked; defaults fill the rest.
func Query(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := make(map[string]any)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 && values[0] != "" {
				raw[key] = values[0]
			}
		}

		cleaned, err := schema.Apply(raw)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(queryKey, cleaned)
		c.Next()
	}
}

// Params validates path parameters.
func Params(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := make(map[string]any, len(c.Params))
		for _, p := range c.Params {
			raw[p.Key] = p.Value
		}

		cleaned, err := schema.Apply(raw)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(paramsKey, cleaned)
		c.Next()
	}
}

// BodyMap returns the cleaned body stored by Body.
func BodyMap(c *gin.Context) map[string]any {
	return contextMap(c, bodyKey)
}

// QueryMap returns the cleaned query stored by Query.
func QueryMap(c *gin.Context) map[string]any {
	return contextMap(c, queryKey)
}

// ParamsMap returns the cleaned path params stored by Params.
func ParamsMap(c *gin.Context) map[string]any {
	return contextMap(c, paramsKey)
}

// DecodeBody unmarshals the cleaned body into a typed request struct.
func DecodeBody(c *gin.Context, out any) error {
	data, err := json.Marshal(BodyMap(c))
	if err != nil {
		return apperror.Internal("Failed to decode request body", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperror.Internal("Failed to decode request body", err)
	}
	return nil
}

func contextMap(c *gin.Context, key string) map[string]any {
	value, ok := c.Get(key)
	if !ok {
		return map[string]any{}
	}
	m, ok := value.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}
