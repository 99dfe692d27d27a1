// Package docs registers the OpenAPI description served under /swagger/.
// Regenerate with `swag init -g api/main.go` after changing handler annotations.
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
        "/login": {
            "post": {
                "security": [{"BasicAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate with HTTP Basic credentials and return a bearer token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.UserResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Create a non-admin user",
                "parameters": [{"description": "User to create", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/bans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "List clients banned after repeated failed logins",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/equipos": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["equipos"],
                "summary": "List active equipment",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.EquipmentResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipos"],
                "summary": "Create equipment",
                "parameters": [{"description": "Equipment to add", "name": "equipo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EquipmentCreateRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.EquipmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipos"],
                "summary": "Update equipment",
                "parameters": [{"description": "Fields to change", "name": "equipo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EquipmentUpdateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.EquipmentResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["equipos"],
                "summary": "Deactivate equipment",
                "parameters": [{"description": "Equipment id", "name": "equipo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.EquipmentDeleteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.Message"}}
                }
            }
        },
        "/metrics/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["metrics"],
                "summary": "Active and inactive record counts per entity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/repo.Metrics"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.Message": {
            "type": "object",
            "properties": {"Mensaje": {"type": "string"}}
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {"Token": {"type": "string"}}
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "description": {"type": "string"}}
        },
        "handlers.CreateUserRequest": {
            "type": "object",
            "properties": {"usuario": {"type": "string"}, "contrasenia": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "is_admin": {"type": "boolean"}}
        },
        "handlers.EquipmentCreateRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string"},
                "precio": {"type": "number"},
                "modelo_id": {"type": "integer"},
                "marca_id": {"type": "integer"},
                "caracteristicas_id": {"type": "integer"},
                "categoria_id": {"type": "integer"},
                "proveedor_id": {"type": "integer"}
            }
        },
        "handlers.EquipmentUpdateRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nombre": {"type": "string"},
                "precio": {"type": "number"},
                "modelo_id": {"type": "integer"},
                "marca_id": {"type": "integer"},
                "caracteristicas_id": {"type": "integer"},
                "categoria_id": {"type": "integer"},
                "proveedor_id": {"type": "integer"},
                "activo": {"type": "boolean"}
            }
        },
        "handlers.EquipmentDeleteRequest": {
            "type": "object",
            "properties": {"id": {"type": "integer"}}
        },
        "handlers.EquipmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "precio": {"type": "number"},
                "activo": {"type": "boolean"},
                "modelo_id": {"type": "integer"},
                "marca_id": {"type": "integer"},
                "categoria_id": {"type": "integer"},
                "caracteristicas_id": {"type": "integer"},
                "proveedor_id": {"type": "integer"}
            }
        },
        "repo.Metrics": {
            "type": "object",
            "properties": {
                "entidades": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "object",
                        "properties": {"activos": {"type": "integer"}, "inactivos": {"type": "integer"}}
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Electronics Store API",
	Description:      "Back office for an electronics retailer: catalog, inventory, orders, customers, staff and sales.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
