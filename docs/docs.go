// docs/docs.go

// Package docs is generated by swag from the handler annotations in
// pkg/server. Regenerate with: swag init -g cmd/main.go
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
        "/api/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["directory"],
                "summary": "Companies available for pre-filling",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/directory.Company"}
                        }
                    }
                }
            }
        },
        "/api/defaults": {
            "get": {
                "produces": ["application/json"],
                "tags": ["records"],
                "summary": "Record a new form starts from",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/invoice.Record"}
                    }
                }
            }
        },
        "/api/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "tags": ["documents"],
                "summary": "Export a record as PDF",
                "parameters": [
                    {
                        "description": "invoice record",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/invoice.Record"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "file"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/server.errorResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/server.errorResponse"}
                    }
                }
            }
        },
        "/api/preview": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["documents"],
                "summary": "Lay out a record",
                "parameters": [
                    {
                        "description": "invoice record",
                        "name": "record",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/invoice.Record"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/render.Document"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/server.errorResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/server.errorResponse"}
                    }
                }
            }
        },
        "/api/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["directory"],
                "summary": "Signers available for pre-filling",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/directory.User"}
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "directory.Company": {
            "type": "object",
            "properties": {
                "additionalInfo": {"type": "string"},
                "logo": {"type": "string"},
                "marks": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "directory.User": {
            "type": "object",
            "properties": {
                "countryCode": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "signature": {"type": "string"}
            }
        },
        "invoice.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "invoice.Item": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "note": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "number"}
            }
        },
        "invoice.Record": {
            "type": "object",
            "properties": {
                "additionalInfo": {"type": "string"},
                "currencyCode": {"type": "string"},
                "customLabel": {"type": "string"},
                "discountPercent": {"type": "number", "x-nullable": true},
                "documentType": {
                    "type": "string",
                    "enum": ["invoice", "estimate", "quote", "custom"]
                },
                "dueDate": {"type": "string", "format": "date-time"},
                "from": {"type": "string"},
                "invoiceNumber": {"type": "string"},
                "issueDate": {"type": "string", "format": "date-time"},
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/invoice.Item"}
                },
                "logo": {"type": "string"},
                "logoPosition": {
                    "type": "string",
                    "enum": ["left", "center", "right"]
                },
                "marks": {"type": "string"},
                "note": {"type": "string"},
                "shippingAmount": {"type": "number", "x-nullable": true},
                "signatureImage": {"type": "string"},
                "signatureLabel": {"type": "string"},
                "taxPercent": {"type": "number", "x-nullable": true},
                "to": {"type": "string"}
            }
        },
        "render.Document": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "page": {"type": "object"},
                "title": {"type": "string"}
            }
        },
        "server.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/invoice.FieldError"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Invoice Generator API",
	Description:      "Lays out invoices, estimates and quotes and exports them as PDF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
