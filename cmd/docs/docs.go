// Package docs holds the swagger registration for the API. Regenerate the
// template with `swag init -g cmd/exchange_desk/main.go -o cmd/docs`.
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
        "/providers/{providerID}/currencies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List a provider's active currencies",
                "parameters": [
                    {"type": "string", "description": "Provider ID", "name": "providerID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Bypass the snapshot cache", "name": "refresh", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/providers/{providerID}/quote": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Price an exchange",
                "parameters": [
                    {"type": "string", "description": "Provider ID", "name": "providerID", "in": "path", "required": true},
                    {"type": "string", "description": "Source currency code", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Target currency code", "name": "to", "in": "query", "required": true},
                    {"type": "string", "description": "Source amount", "name": "amount", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/providers/{providerID}/drafts": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Start an exchange request",
                "parameters": [
                    {"type": "string", "description": "Provider ID", "name": "providerID", "in": "path", "required": true}
                ],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/drafts/{draftID}/submit": {
            "post": {
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Submit the request",
                "parameters": [
                    {"type": "string", "description": "Draft ID", "name": "draftID", "in": "path", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/verify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Start provider sign-in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/otp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Complete provider sign-in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/admin/rates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get the rate board",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Submit today's rates",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/admin/requests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List exchange requests",
                "parameters": [
                    {"type": "string", "description": "recent, pending, completed, biggest_sell or biggest_buy", "name": "tab", "in": "query"},
                    {"type": "string", "description": "Token from a previous page", "name": "pageToken", "in": "query"},
                    {"type": "string", "description": "Display language (ar or en)", "name": "lang", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
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
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Exchange Desk API",
	Description:      "Backend for currency exchange providers and their guests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
