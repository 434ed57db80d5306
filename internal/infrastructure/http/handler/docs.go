package handler

import (
	"net/http"

	"github.com/glueflow/automation-api/internal/application"
	"github.com/gin-gonic/gin"
)

// DocsHandler serves the generated Markdown endpoint reference.
func DocsHandler(validator *application.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/markdown; charset=utf-8",
			[]byte(validator.GenerateDocumentation()))
	}
}

// OpenAPIHandler serves the exported OpenAPI 3.0 schema.
func OpenAPIHandler(validator *application.Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, validator.ExportOpenAPISchema())
	}
}
