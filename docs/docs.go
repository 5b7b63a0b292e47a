// Package docs is generated by swag from the handler annotations.
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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Account", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gin.H"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/gin.H"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/gin.H"}}
                }
            }
        },
        "/boards/{id}/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dependencies"],
                "summary": "List board tasks, predecessors first",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/gin.H"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/gin.H"}}
                }
            }
        },
        "/boards/{id}/task-tree": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dependencies"],
                "summary": "Board tasks nested under their predecessor",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Only this column", "name": "column_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskTreeNode"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gin.H"}}
                }
            }
        },
        "/boards/{id}/gated-columns": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Dependencies"],
                "summary": "Gated column names in force on a board",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GatedColumnsResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dependencies"],
                "summary": "Replace a board's gated column names",
                "parameters": [
                    {"type": "string", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Names", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.GatedColumnsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.GatedColumnsResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/gin.H"}}
                }
            }
        },
        "/tasks/{id}/move": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Move a task to a column and position",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Target", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TaskMoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.MoveResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/gin.H"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.CascadeResponse"}}
                }
            }
        },
        "/tasks/{id}/dependency-chain": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Preview the predecessors a move would drag along",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Target column ID", "name": "column_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CascadeResponse"}}
                }
            }
        }
    },
    "definitions": {
        "gin.H": {
            "type": "object",
            "additionalProperties": {}
        },
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string", "minLength": 2},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.UserResponse"}
            }
        },
        "handler.LabelResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "column_id": {"type": "string"},
                "assigned_to": {"type": "string"},
                "assignee_name": {"type": "string"},
                "created_by": {"type": "string"},
                "creator_name": {"type": "string"},
                "due_date": {"type": "string"},
                "position": {"type": "integer"},
                "depends_on": {"type": "string"},
                "depth": {"type": "integer"},
                "labels": {"type": "array", "items": {"$ref": "#/definitions/handler.LabelResponse"}}
            }
        },
        "handler.TaskTreeNode": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "column_id": {"type": "string"},
                "depends_on": {"type": "string"},
                "depth": {"type": "integer"},
                "children": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskTreeNode"}}
            }
        },
        "handler.TaskMoveRequest": {
            "type": "object",
            "required": ["column_id"],
            "properties": {
                "column_id": {"type": "string"},
                "position": {"type": "integer", "minimum": 0},
                "confirm_cascade": {"type": "boolean"}
            }
        },
        "handler.TaskSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "column_id": {"type": "string"}
            }
        },
        "handler.CascadeResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "gated": {"type": "boolean"},
                "chain": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskSummary"}},
                "plan": {"type": "array", "items": {"$ref": "#/definitions/handler.TaskSummary"}}
            }
        },
        "handler.MoveResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "moved": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.GatedColumnsRequest": {
            "type": "object",
            "properties": {
                "names": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.GatedColumnsResponse": {
            "type": "object",
            "properties": {
                "names": {"type": "array", "items": {"type": "string"}},
                "default": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "Kanban boards with dependency-aware task movement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
