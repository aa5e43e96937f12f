// Package docs registers the OpenAPI document served under /swagger/.
// It follows the layout `swag init` emits; keep it in step with the godoc
// annotations on the handlers when routes change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness and database check",
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
                    "503": {
                        "description": "Database unreachable",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the identity provider's user record and the local user for the bearer token. The local user is created on first call.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Current identity",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.MeResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profiles.Profile"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Profile not found",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Every attribute in the body replaces the stored value; omitted optional attributes are cleared.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Create or replace the caller's profile",
                "parameters": [
                    {
                        "description": "Profile attributes",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profiles.ProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/profiles.Profile"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid token",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/register-user": {
            "post": {
                "description": "Creates the local user for an email, or returns the existing one. Calling it twice with the same email returns the same user.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Register a user",
                "parameters": [
                    {
                        "description": "Email and display name",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/users.RegisterUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/users.UserResponse"
                        }
                    },
                    "422": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/apperror.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "apperror.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/apperror.FieldError"
                    }
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "apperror.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "auth.Identity": {
            "type": "object",
            "properties": {
                "app_metadata": {
                    "type": "object",
                    "additionalProperties": {}
                },
                "aud": {
                    "type": "string",
                    "example": "authenticated"
                },
                "confirmed_at": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string",
                    "example": "ada@example.com"
                },
                "email_confirmed_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string",
                    "example": "8d0fd2b3-9ca7-4c2a-8d5b-7a3a52a0c1f1"
                },
                "last_sign_in_at": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "example": "authenticated"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_metadata": {
                    "type": "object",
                    "additionalProperties": {}
                }
            }
        },
        "profiles.Profile": {
            "type": "object",
            "properties": {
                "alcohol_consumption": {
                    "type": "string"
                },
                "average_screen_time": {
                    "type": "integer"
                },
                "diet_habits": {
                    "type": "string"
                },
                "exercise_frequency": {
                    "type": "string"
                },
                "eye_pain_or_headache": {
                    "type": "string"
                },
                "glasses_user": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "lens_power": {
                    "type": "string"
                },
                "lighting_environment": {
                    "type": "string"
                },
                "medical_history": {
                    "type": "string"
                },
                "occupation": {
                    "type": "string"
                },
                "sleep_hours": {
                    "type": "integer"
                },
                "smoker": {
                    "type": "string"
                },
                "user_id": {
                    "type": "integer"
                },
                "water_intake": {
                    "type": "string"
                },
                "work_environment": {
                    "type": "string"
                }
            }
        },
        "profiles.ProfileRequest": {
            "type": "object",
            "required": [
                "average_screen_time",
                "diet_habits",
                "eye_pain_or_headache",
                "glasses_user",
                "lighting_environment",
                "occupation",
                "sleep_hours",
                "work_environment"
            ],
            "properties": {
                "alcohol_consumption": {
                    "type": "string",
                    "example": "occasionally"
                },
                "average_screen_time": {
                    "type": "integer",
                    "example": 9
                },
                "diet_habits": {
                    "type": "string",
                    "example": "balanced"
                },
                "exercise_frequency": {
                    "type": "string",
                    "example": "weekly"
                },
                "eye_pain_or_headache": {
                    "type": "string",
                    "example": "sometimes"
                },
                "glasses_user": {
                    "type": "string",
                    "example": "yes"
                },
                "lens_power": {
                    "type": "string",
                    "example": "-1.25"
                },
                "lighting_environment": {
                    "type": "string",
                    "example": "artificial"
                },
                "medical_history": {
                    "type": "string"
                },
                "occupation": {
                    "type": "string",
                    "example": "Software engineer"
                },
                "sleep_hours": {
                    "type": "integer",
                    "example": 7
                },
                "smoker": {
                    "type": "string",
                    "example": "no"
                },
                "water_intake": {
                    "type": "string",
                    "example": "2l"
                },
                "work_environment": {
                    "type": "string",
                    "example": "office"
                }
            }
        },
        "users.MeResponse": {
            "type": "object",
            "properties": {
                "db_user": {
                    "$ref": "#/definitions/users.UserResponse"
                },
                "supabase_user": {
                    "$ref": "#/definitions/auth.Identity"
                }
            }
        },
        "users.RegisterUserRequest": {
            "type": "object",
            "required": [
                "email",
                "name"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ada@example.com"
                },
                "name": {
                    "type": "string",
                    "example": "Ada Lovelace"
                }
            }
        },
        "users.UserResponse": {
            "description": "Local user record",
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "ada@example.com"
                },
                "full_name": {
                    "type": "string",
                    "example": "Ada Lovelace"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type 'Bearer YOUR_JWT_TOKEN' to authorize",
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
	Title:            "VisionTest API",
	Description:      "User registration, identity and eye-health profile API backed by Supabase Auth.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
