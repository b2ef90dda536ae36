// Package docs registers the OpenAPI document served under /swagger.
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
        "/auth/login": {
            "post": {
                "description": "Exchange the admin password for a session cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Admin password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/event": {
            "get": {
                "produces": ["application/json"],
                "tags": ["event"],
                "summary": "Wedding details",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests": {
            "get": {
                "description": "Get the guest list, newest first, optionally filtered",
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "List guests",
                "parameters": [
                    {"type": "string", "description": "bride or groom", "name": "side", "in": "query"},
                    {"type": "string", "description": "pending, attending or declined", "name": "rsvp_status", "in": "query"},
                    {"type": "boolean", "description": "Invitation delivered", "name": "is_invited", "in": "query"},
                    {"type": "string", "description": "Name contains", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "description": "Add a single guest; an invite id is generated when omitted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Add a guest",
                "parameters": [
                    {"description": "Guest", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.CreateGuestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/import": {
            "post": {
                "description": "Header row needs name and side; tags and rsvp_status are optional. Invalid rows are skipped.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Import guests from CSV",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/bulk-delete": {
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Delete many guests",
                "parameters": [
                    {"description": "Guest IDs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.BulkDeleteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/bulk-update": {
            "patch": {
                "description": "Apply the same side, status or invited flag to every listed guest",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Update many guests",
                "parameters": [
                    {"description": "Guest IDs and fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.BulkUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Get guest by ID",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "put": {
                "description": "Only the fields present in the body are changed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Edit a guest",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.UpdateGuestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Set RSVP status",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Delete a guest",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/{id}/toggle-invited": {
            "post": {
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Toggle invited flag",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/guests/{id}/invite-link": {
            "post": {
                "description": "Returns the guest's personal link and marks the guest as invited",
                "produces": ["application/json"],
                "tags": ["guests"],
                "summary": "Get invitation link",
                "parameters": [
                    {"type": "string", "description": "Guest ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/rsvp/anonymous": {
            "post": {
                "description": "Creates an attending guest tagged anonymous",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rsvp"],
                "summary": "RSVP without an invitation link",
                "parameters": [
                    {"description": "Name and side", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.AnonymousRSVPRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/rsvp/{uniqueInviteId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rsvp"],
                "summary": "Open an invitation",
                "parameters": [
                    {"type": "string", "description": "Invite token", "name": "uniqueInviteId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "patch": {
                "description": "Only attending or declined are accepted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rsvp"],
                "summary": "Answer an invitation",
                "parameters": [
                    {"type": "string", "description": "Invite token", "name": "uniqueInviteId", "in": "path", "required": true},
                    {"description": "attending or declined", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/guest.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Guest list statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "required": ["password"],
            "properties": {
                "password": {"type": "string"}
            }
        },
        "guest.AnonymousRSVPRequest": {
            "type": "object",
            "required": ["name", "side"],
            "properties": {
                "name": {"type": "string"},
                "side": {"type": "string", "enum": ["bride", "groom"]}
            }
        },
        "guest.BulkDeleteRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}}
            }
        },
        "guest.BulkUpdateRequest": {
            "type": "object",
            "properties": {
                "ids": {"type": "array", "items": {"type": "string"}},
                "is_invited": {"type": "boolean"},
                "rsvp_status": {"type": "string", "enum": ["pending", "attending", "declined"]},
                "side": {"type": "string", "enum": ["bride", "groom"]}
            }
        },
        "guest.CreateGuestRequest": {
            "type": "object",
            "required": ["name", "rsvp_status", "side"],
            "properties": {
                "is_invited": {"type": "boolean"},
                "name": {"type": "string"},
                "rsvp_status": {"type": "string", "enum": ["pending", "attending", "declined"]},
                "side": {"type": "string", "enum": ["bride", "groom"]},
                "tags": {"type": "array", "items": {"type": "string"}},
                "unique_invite_id": {"type": "string", "maxLength": 10, "minLength": 8}
            }
        },
        "guest.UpdateGuestRequest": {
            "type": "object",
            "properties": {
                "is_invited": {"type": "boolean"},
                "name": {"type": "string"},
                "rsvp_status": {"type": "string", "enum": ["pending", "attending", "declined"]},
                "side": {"type": "string", "enum": ["bride", "groom"]},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "guest.UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "rsvp_status": {"type": "string"}
            }
        },
        "response.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/response.APIError"},
                "meta": {"$ref": "#/definitions/response.Meta"},
                "success": {"type": "boolean"}
            }
        },
        "response.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wedding RSVP API",
	Description:      "Guest list management and RSVP collection for a wedding invitation site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
