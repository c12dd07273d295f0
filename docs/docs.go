// Package docs registers the API description served at /swagger.
// It follows the layout of swag init output but is maintained by hand;
// keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/games": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Appends a game to the catalog. Duplicate ids are accepted; an empty id is replaced by a generated one.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Add a game",
                "parameters": [
                    {"description": "Game", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Game"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/admin/games/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removes the first game with the given id. Unknown ids are a no-op.",
                "produces": ["application/json"],
                "tags": ["admin-games"],
                "summary": "Remove a game",
                "parameters": [
                    {"type": "string", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RemoveGameResponse"}},
                    "403": {"description": "Admin access required", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Checks the admin password and returns an authentication token.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in as catalog admin",
                "parameters": [
                    {"description": "Admin credentials", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "503": {"description": "Admin login is not configured", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Retrieves every category in catalog order.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get all categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.GameCategory"}}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "description": "Retrieves the first category with the given id.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a single category by ID",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GameCategory"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/games": {
            "get": {
                "description": "Retrieves the games whose category equals the given id exactly. Unknown ids yield an empty list.",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get the games of a category",
                "parameters": [
                    {"type": "string", "description": "Category ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}}
                }
            }
        },
        "/events": {
            "get": {
                "description": "Server-sent events stream; each \"catalog\" event carries a game_added or game_removed change.",
                "produces": ["text/event-stream"],
                "tags": ["events"],
                "summary": "Stream catalog changes",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/games": {
            "get": {
                "description": "Retrieves a paginated list of games, with optional filtering by category, featured flag, title and tag.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a list of games",
                "parameters": [
                    {"type": "string", "description": "Category ID (exact match)", "name": "category", "in": "query"},
                    {"type": "boolean", "description": "Return only featured games (true/false; anything else is rejected)", "name": "featured", "in": "query"},
                    {"type": "string", "description": "Search query for game title", "name": "q", "in": "query"},
                    {"type": "string", "description": "Return only games with this tag", "name": "tag", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.PaginatedGameResponse"}},
                    "400": {"description": "Invalid featured flag", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/games/featured": {
            "get": {
                "description": "Retrieves the featured games in catalog order.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get featured games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "description": "Retrieves the first game with the given id.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [
                    {"type": "string", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "404": {"description": "Game not found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "An error message"}
            }
        },
        "handler.LoginInput": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string", "example": "password123"}
            }
        },
        "handler.PaginatedGameResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Game"}},
                "meta": {"$ref": "#/definitions/handler.PaginationMeta"}
            }
        },
        "handler.PaginationMeta": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.RemoveGameResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "removed": {"type": "boolean"}
            }
        },
        "handler.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "addedDate": {"type": "string", "format": "date-time"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "embedUrl": {"type": "string"},
                "featured": {"type": "boolean"},
                "gameType": {"type": "string", "enum": ["html5", "iframe", "flash"]},
                "id": {"type": "string"},
                "path": {"type": "string"},
                "swfUrl": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "thumbnail": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.GameCategory": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Arcade API",
	Description:      "Catalog of playable HTML5, iframe and Flash games.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
