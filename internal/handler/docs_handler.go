package handler

import (
	"encoding/json"
	"net/http"
)

// DocsHandler serves the OpenAPI document and a Swagger UI page. The document
// is assembled once at construction with the configured external base URL in
// its servers list.
type DocsHandler struct {
	spec []byte
}

func NewDocsHandler(baseURL string) *DocsHandler {
	spec, _ := json.Marshal(openAPIDocument(baseURL))
	return &DocsHandler{spec: spec}
}

func (h *DocsHandler) OpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.spec)
}

func (h *DocsHandler) SwaggerUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Security-Policy", "default-src 'self'; connect-src 'self' https://unpkg.com; script-src 'self' 'unsafe-inline' https://unpkg.com; style-src 'self' 'unsafe-inline' https://unpkg.com; img-src 'self' data: https://validator.swagger.io")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Product API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>body{margin:0;background:#fafafa;}#swagger-ui{max-width:1200px;margin:0 auto;}</style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/api/docs.json',
        dom_id: '#swagger-ui',
        deepLinking: true,
        displayRequestDuration: true,
        persistAuthorization: true
      });
    </script>
  </body>
</html>`))
}

func openAPIDocument(baseURL string) map[string]any {
	errorSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"error": map[string]any{"type": "string"},
		},
	}
	userSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"email": map[string]any{"type": "string", "format": "email"},
			"name":  map[string]any{"type": "string"},
		},
	}
	productSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string"},
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"price":       map[string]any{"type": "number", "format": "float"},
			"stock":       map[string]any{"type": "integer"},
		},
	}
	authResponseSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
			"token":   map[string]any{"type": "string"},
			"user":    map[string]any{"$ref": "#/components/schemas/User"},
		},
	}

	bearerSecurity := []map[string]any{{"bearerAuth": []any{}}}

	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Product API",
			"version":     "1.0.0",
			"description": "REST API with user authentication and a product catalog",
		},
		"servers": []map[string]any{
			{"url": baseURL},
		},
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
			"schemas": map[string]any{
				"Error":        errorSchema,
				"User":         userSchema,
				"Product":      productSchema,
				"AuthResponse": authResponseSchema,
			},
		},
		"paths": map[string]any{
			"/api/auth/register": map[string]any{
				"post": map[string]any{
					"summary": "Register a new user",
					"tags":    []string{"Auth"},
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type":     "object",
									"required": []string{"email", "password", "name"},
									"properties": map[string]any{
										"email":    map[string]any{"type": "string", "format": "email"},
										"password": map[string]any{"type": "string"},
										"name":     map[string]any{"type": "string"},
									},
								},
							},
						},
					},
					"responses": map[string]any{
						"201": map[string]any{"description": "User registered successfully"},
						"400": map[string]any{"description": "Missing required fields"},
						"409": map[string]any{"description": "User already exists"},
						"500": map[string]any{"description": "Server error"},
					},
				},
			},
			"/api/auth/login": map[string]any{
				"post": map[string]any{
					"summary": "Login user",
					"tags":    []string{"Auth"},
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type":     "object",
									"required": []string{"email", "password"},
									"properties": map[string]any{
										"email":    map[string]any{"type": "string", "format": "email"},
										"password": map[string]any{"type": "string"},
									},
								},
							},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{"description": "Login successful"},
						"400": map[string]any{"description": "Missing required fields"},
						"401": map[string]any{"description": "Invalid credentials"},
						"500": map[string]any{"description": "Server error"},
					},
				},
			},
			"/api/products": map[string]any{
				"get": map[string]any{
					"summary":  "Get all products",
					"tags":     []string{"Products"},
					"security": bearerSecurity,
					"responses": map[string]any{
						"200": map[string]any{"description": "Products retrieved successfully"},
						"401": map[string]any{"description": "Missing or invalid token"},
						"500": map[string]any{"description": "Server error"},
					},
				},
			},
			"/api/products/{id}": map[string]any{
				"get": map[string]any{
					"summary":  "Get product details by ID",
					"tags":     []string{"Products"},
					"security": bearerSecurity,
					"parameters": []map[string]any{
						{
							"in":       "path",
							"name":     "id",
							"required": true,
							"schema":   map[string]any{"type": "string"},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{"description": "Product retrieved successfully"},
						"401": map[string]any{"description": "Missing or invalid token"},
						"404": map[string]any{"description": "Product not found"},
						"500": map[string]any{"description": "Server error"},
					},
				},
			},
			"/health": map[string]any{
				"get": map[string]any{
					"summary": "Health check",
					"responses": map[string]any{
						"200": map[string]any{"description": "Server is running"},
					},
				},
			},
		},
	}
}
