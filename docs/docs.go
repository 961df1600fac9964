// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@kostdesk.id"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Login user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/refresh": {"post": {"tags": ["Auth"], "summary": "Refresh access token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Logout user", "responses": {"200": {"description": "OK"}}}},
        "/auth/logout-all": {"post": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Logout from all devices", "responses": {"200": {"description": "OK"}}}},
        "/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Get current user", "responses": {"200": {"description": "OK"}}}},
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "List all users", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Create user", "responses": {"201": {"description": "Created"}}}
        },
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Get user by ID", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Update user", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Delete user", "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}/role": {"put": {"security": [{"BearerAuth": []}], "tags": ["Users"], "summary": "Set user role", "responses": {"200": {"description": "OK"}}}},
        "/profile/password": {"put": {"security": [{"BearerAuth": []}], "tags": ["Profile"], "summary": "Change password", "responses": {"200": {"description": "OK"}}}},
        "/properties": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Properties"], "summary": "List properties", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Properties"], "summary": "Create property", "responses": {"201": {"description": "Created"}}}
        },
        "/properties/{id}/rooms": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Properties"], "summary": "List rooms", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Properties"], "summary": "Create room", "responses": {"201": {"description": "Created"}}}
        },
        "/rooms/{id}/maintenance": {"put": {"security": [{"BearerAuth": []}], "tags": ["Properties"], "summary": "Set room maintenance flag", "responses": {"200": {"description": "OK"}}}},
        "/contracts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Contracts"], "summary": "List contracts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Contracts"], "summary": "Create contract", "responses": {"201": {"description": "Created"}}}
        },
        "/contracts/summary": {"get": {"security": [{"BearerAuth": []}], "tags": ["Contracts"], "summary": "Contract summary", "responses": {"200": {"description": "OK"}}}},
        "/contracts/{id}": {"get": {"security": [{"BearerAuth": []}], "tags": ["Contracts"], "summary": "Get contract", "responses": {"200": {"description": "OK"}}}},
        "/invoices": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Invoices"], "summary": "List invoices", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Invoices"], "summary": "Create invoice", "responses": {"201": {"description": "Created"}}}
        },
        "/invoices/summary": {"get": {"security": [{"BearerAuth": []}], "tags": ["Invoices"], "summary": "Invoice summary", "responses": {"200": {"description": "OK"}}}},
        "/invoices/{id}/pay": {"put": {"security": [{"BearerAuth": []}], "tags": ["Invoices"], "summary": "Pay invoice", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/invoices/{id}/cancel": {"put": {"security": [{"BearerAuth": []}], "tags": ["Invoices"], "summary": "Cancel invoice", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/maintenance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Maintenance"], "summary": "List maintenance tickets", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Maintenance"], "summary": "Create maintenance ticket", "responses": {"201": {"description": "Created"}}}
        },
        "/maintenance/summary": {"get": {"security": [{"BearerAuth": []}], "tags": ["Maintenance"], "summary": "Maintenance summary", "responses": {"200": {"description": "OK"}}}},
        "/maintenance/{id}/status": {"put": {"security": [{"BearerAuth": []}], "tags": ["Maintenance"], "summary": "Update maintenance ticket status", "responses": {"200": {"description": "OK"}}}},
        "/todos": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "List todos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Create todo", "responses": {"201": {"description": "Created"}}}
        },
        "/todos/{id}/status": {"put": {"security": [{"BearerAuth": []}], "tags": ["Todos"], "summary": "Update todo status", "responses": {"200": {"description": "OK"}}}},
        "/waiting-list": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Waiting List"], "summary": "List waiting list", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Waiting List"], "summary": "Create waiting list entry", "responses": {"201": {"description": "Created"}}}
        },
        "/waiting-list/{id}/approve": {"put": {"security": [{"BearerAuth": []}], "tags": ["Waiting List"], "summary": "Approve waiting list entry", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/waiting-list/{id}/reject": {"put": {"security": [{"BearerAuth": []}], "tags": ["Waiting List"], "summary": "Reject waiting list entry", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/waiting-list/{id}/convert": {"post": {"security": [{"BearerAuth": []}], "tags": ["Waiting List"], "summary": "Convert waiting list entry", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/cash-flow": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Cash Flow"], "summary": "List cash flow entries", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Cash Flow"], "summary": "Create cash flow entry", "responses": {"201": {"description": "Created"}}}
        },
        "/cash-flow/summary": {"get": {"security": [{"BearerAuth": []}], "tags": ["Cash Flow"], "summary": "Cash flow summary", "responses": {"200": {"description": "OK"}}}},
        "/calendar": {"get": {"security": [{"BearerAuth": []}], "tags": ["Calendar"], "summary": "Calendar", "responses": {"200": {"description": "OK"}}}},
        "/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["Dashboard"], "summary": "Get dashboard overview", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "kostdesk API",
	Description:      "Property and tenant management dashboard API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
