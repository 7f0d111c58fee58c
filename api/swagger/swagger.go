package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Hydrant API",
        "description": "Weekly course planner: catalog browse, session planning, schedule export",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Immutable class catalog"},
        {"name": "Planner", "description": "Per-session schedule planning"},
        {"name": "Export", "description": "Schedule downloads"}
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/classes": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List catalog classes",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "course", "in": "query", "type": "string"},
                    {"name": "term", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "sort", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/classes/{number}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get class detail",
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sessions": {
            "post": {
                "tags": ["Planner"],
                "summary": "Open a planner session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session": {
            "get": {
                "tags": ["Planner"],
                "summary": "Get the full planner state",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/calendar": {
            "get": {
                "tags": ["Planner"],
                "summary": "Render the session week",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/suggestions/{number}": {
            "get": {
                "tags": ["Planner"],
                "summary": "Rank section alternatives against the session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/classes/{number}": {
            "post": {
                "tags": ["Planner"],
                "summary": "Add a catalog class to the session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/classes/{number}/sections": {
            "post": {
                "tags": ["Planner"],
                "summary": "Select a section alternative",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SelectSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Invalid selection", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/classes/{number}/sections/{kind}": {
            "delete": {
                "tags": ["Planner"],
                "summary": "Clear the selection of one section group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true},
                    {"name": "kind", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Cleared"}
                }
            }
        },
        "/api/v1/session/classes/{number}/sections/{kind}/lock": {
            "put": {
                "tags": ["Planner"],
                "summary": "Toggle the advisory lock on a section group",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "number", "in": "path", "type": "string", "required": true},
                    {"name": "kind", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LockRequest"}}
                ],
                "responses": {
                    "204": {"description": "Updated"}
                }
            }
        },
        "/api/v1/session/activities/{id}": {
            "delete": {
                "tags": ["Planner"],
                "summary": "Remove an activity from the session",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "204": {"description": "Removed"}
                }
            }
        },
        "/api/v1/session/activities/{id}/color": {
            "put": {
                "tags": ["Planner"],
                "summary": "Set an activity's display color",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ColorRequest"}}
                ],
                "responses": {
                    "204": {"description": "Updated"}
                }
            }
        },
        "/api/v1/session/events": {
            "post": {
                "tags": ["Planner"],
                "summary": "Create a personal event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/session/events/{id}": {
            "put": {
                "tags": ["Planner"],
                "summary": "Rename a personal event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventRequest"}}
                ],
                "responses": {
                    "204": {"description": "Renamed"}
                }
            }
        },
        "/api/v1/session/events/{id}/timeslots": {
            "post": {
                "tags": ["Planner"],
                "summary": "Add a timeslot to a personal event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimeslotRequest"}}
                ],
                "responses": {
                    "204": {"description": "Added"},
                    "409": {"description": "Activity not editable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Planner"],
                "summary": "Remove a timeslot from a personal event",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "start", "in": "query", "type": "integer", "required": true},
                    {"name": "slots", "in": "query", "type": "integer", "required": true}
                ],
                "responses": {
                    "204": {"description": "Removed"}
                }
            }
        },
        "/api/v1/session/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the weekly schedule as PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF document"}
                }
            }
        },
        "/api/v1/session/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the schedule event list as CSV",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV document"}
                }
            }
        }
    },
    "definitions": {
        "SelectSectionRequest": {
            "type": "object",
            "required": ["kind", "index"],
            "properties": {
                "kind": {"type": "string", "enum": ["lecture", "recitation", "lab"]},
                "index": {"type": "integer"}
            }
        },
        "LockRequest": {
            "type": "object",
            "required": ["locked"],
            "properties": {
                "locked": {"type": "boolean"}
            }
        },
        "ColorRequest": {
            "type": "object",
            "required": ["color"],
            "properties": {
                "color": {"type": "string", "example": "#4A5E8C"}
            }
        },
        "EventRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "TimeslotRequest": {
            "type": "object",
            "required": ["start", "end"],
            "properties": {
                "start": {"type": "string", "format": "date-time"},
                "end": {"type": "string", "format": "date-time"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
