package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>seoatlas — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document; each of the four entities exposes the same five
// operations, so only the shared shape is spelled out.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "seoatlas", "version": "v0.1.0" },
  "paths": {
    "/clients/create": { "post": { "summary": "Create a client", "responses": { "200": { "description": "created client with id" }, "400": { "description": "validation failure" } } } },
    "/clients/": { "get": { "summary": "List clients", "responses": { "200": { "description": "all clients" } } } },
    "/clients/{id}": {
      "get": { "summary": "Fetch a client", "responses": { "200": { "description": "client" }, "400": { "description": "malformed id" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update a client", "responses": { "200": { "description": "updated client" }, "400": { "description": "malformed id or body" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a client and its projects", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/websites/create": { "post": { "summary": "Create a website", "responses": { "200": { "description": "created website with id" } } } },
    "/websites/": { "get": { "summary": "List websites", "responses": { "200": { "description": "all websites" } } } },
    "/websites/{id}": {
      "get": { "summary": "Fetch a website", "responses": { "200": { "description": "website" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update a website", "responses": { "200": { "description": "updated website" } } },
      "delete": { "summary": "Delete a website and its projects", "responses": { "200": { "description": "deleted" } } }
    },
    "/projects/create": { "post": { "summary": "Create a project", "responses": { "200": { "description": "created project with id" } } } },
    "/projects/": { "get": { "summary": "List projects", "responses": { "200": { "description": "all projects" } } } },
    "/projects/{id}": {
      "get": { "summary": "Fetch a project", "responses": { "200": { "description": "project" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update a project", "responses": { "200": { "description": "updated project" } } },
      "delete": { "summary": "Delete a project", "responses": { "200": { "description": "deleted" } } }
    },
    "/gmb/create": { "post": { "summary": "Create a gmb entry", "responses": { "200": { "description": "created entry with id" } } } },
    "/gmb/": { "get": { "summary": "List gmb entries", "responses": { "200": { "description": "all entries" } } } },
    "/gmb/{id}": {
      "get": { "summary": "Fetch a gmb entry", "responses": { "200": { "description": "entry" }, "404": { "description": "not found" } } },
      "put": { "summary": "Partially update a gmb entry", "responses": { "200": { "description": "updated entry" } } },
      "delete": { "summary": "Delete a gmb entry", "responses": { "200": { "description": "deleted" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
