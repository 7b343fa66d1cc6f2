// Package docs provides the generated Swagger specification consumed by the
// /api/swagger route. Regenerate with: swag init -g cmd/api/main.go
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
        "/accounts/auth/register/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Register a new student account",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/accounts/auth/login/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Obtain an access/refresh token pair",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/accounts/auth/refresh/": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Exchange a refresh token for a new access token",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/accounts/me/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Current account",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/talents/public/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["talents"],
                "summary": "Search public talents",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "prodi", "in": "query"},
                    {"type": "string", "name": "skill", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/talents/latest/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["talents"],
                "summary": "Five most recently registered public talents",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/talents/top/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["talents"],
                "summary": "Top talents by skill then experience count",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/talents/statistics/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["talents"],
                "summary": "Public dashboard counters",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/talents/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["talents"],
                "summary": "Full talent profile",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/talents/me/profile/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Own talent profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Patch own profile",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/talents/me/skills/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Own skills",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Attach a skill",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/talents/me/skills/{id}/": {
            "delete": {
                "tags": ["me"],
                "summary": "Detach a skill",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/talents/me/experiences/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Own experiences",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Add a work experience",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/talents/me/experiences/{id}/": {
            "delete": {
                "tags": ["me"],
                "summary": "Delete a work experience",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/talents/me/projects/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Own portfolio projects",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Add a portfolio project",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/talents/me/projects/{id}/": {
            "delete": {
                "tags": ["me"],
                "summary": "Delete a portfolio project",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/talents/me/social-links/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Own social links",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["me"],
                "summary": "Add a social link",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/talents/me/social-links/{id}/": {
            "delete": {
                "tags": ["me"],
                "summary": "Delete a social link",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Student Talent Directory API",
	Description:      "Backend for the student talent directory using Clean Architecture.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
