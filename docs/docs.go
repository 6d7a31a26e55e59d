// Package docs registers the Swagger document for the HTTP API. It follows the
// layout swag init emits; keep it in step with the handler annotations.
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
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register a user",
				"parameters": [
					{
						"description": "Account",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "message, id",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"parameters": [
					{
						"description": "Credentials",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.LoginResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/articles": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "List articles",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Article"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Create article",
				"parameters": [
					{
						"description": "Article",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.ArticleRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "message, article",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/articles/search": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Search articles by title",
				"description": "Case-insensitive substring match; % and _ are literal",
				"parameters": [
					{
						"description": "Needle",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.SearchRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Article"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/articles/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Get article",
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Article"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Update article",
				"description": "Author or admin only",
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Article",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.ArticleRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "message, article",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"articles"
				],
				"summary": "Delete article",
				"description": "Admin only",
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/articles/{id}/comments": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "List comments of an article",
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Comment"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Add comment",
				"parameters": [
					{
						"type": "integer",
						"description": "Article ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Comment",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CommentRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"201": {
						"description": "message, comment",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/comments/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Get comment",
				"parameters": [
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Delete comment",
				"description": "Author or admin only",
				"parameters": [
					{
						"type": "integer",
						"description": "Comment ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/users": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "List users",
				"description": "Admin only",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/users/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get user",
				"description": "Self or admin",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Update user",
				"description": "Self or admin; role changes are admin only",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UserUpdateRequest"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "message, user",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Delete user",
				"description": "Admin only; an admin cannot delete their own account",
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.ArticleRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string",
					"example": "First post"
				},
				"title": {
					"type": "string",
					"example": "Hello"
				}
			}
		},
		"handlers.CommentRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string",
					"example": "Nice post"
				}
			}
		},
		"handlers.LoginRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "alice@example.com"
				},
				"password": {
					"type": "string",
					"example": "s3cret!"
				}
			}
		},
		"handlers.LoginResponse": {
			"type": "object",
			"properties": {
				"message": {
					"type": "string"
				},
				"token": {
					"type": "string"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				}
			}
		},
		"handlers.RegisterRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "alice@example.com"
				},
				"password": {
					"type": "string",
					"example": "s3cret!"
				},
				"username": {
					"type": "string",
					"example": "alice"
				}
			}
		},
		"handlers.SearchRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"example": "go"
				}
			}
		},
		"handlers.UserUpdateRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string",
					"example": "alice2@example.com"
				},
				"password": {
					"type": "string"
				},
				"role": {
					"description": "Admin only. Allowed: user, admin",
					"type": "string",
					"example": "user"
				},
				"username": {
					"type": "string",
					"example": "alice2"
				}
			}
		},
		"models.Article": {
			"type": "object",
			"properties": {
				"author_id": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"models.Comment": {
			"type": "object",
			"properties": {
				"article_id": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"user_id": {
					"type": "integer"
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"role": {
					"type": "string"
				},
				"username": {
					"type": "string"
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blog API",
	Description:      "Users, articles and comments with JWT authentication and admin/user roles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
