package middleware

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// rawFields are compared or hashed as typed and never rewritten.
var rawFields = map[string]bool{
	"password":     true,
	"old_password": true,
	"new_password": true,
}

// SanitizeAndCleanInputMiddleware strips markup from every top-level string
// field of a JSON body using bluemonday, except rawFields. Entities the
// policy escapes are decoded again so names like "Fast & Furious" survive
// unchanged.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}
		if !strings.HasPrefix(c.ContentType(), "application/json") {
			c.Next()
			return
		}

		var body map[string]interface{}
		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		dec := json.NewDecoder(bytes.NewReader(buf))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		for k, v := range body {
			if rawFields[k] {
				continue
			}
			if str, ok := v.(string); ok {
				body[k] = html.UnescapeString(policy.Sanitize(str))
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
