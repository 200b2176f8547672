// Package docs registers the Swagger document served at /swagger.
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
            "get": {"tags": ["system"], "summary": "Service and store health", "responses": {"200": {"description": "OK"}, "503": {"description": "Store unreachable"}}}
        },
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Log in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid email or password"}}}
        },
        "/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["auth"], "summary": "Current user profile", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}
        },
        "/jobs": {
            "get": {"tags": ["jobs"], "summary": "List jobs with search, status filter, sort and pagination", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid sort field"}}},
            "post": {"tags": ["jobs"], "summary": "Create a job", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation error or duplicate slug"}, "500": {"description": "Simulated network error"}}}
        },
        "/jobs/{id}": {
            "get": {"tags": ["jobs"], "summary": "Get a job", "responses": {"200": {"description": "OK"}, "404": {"description": "Job not found"}}},
            "patch": {"tags": ["jobs"], "summary": "Update a job", "responses": {"200": {"description": "OK"}, "404": {"description": "Job not found"}}}
        },
        "/jobs/{id}/reorder": {
            "patch": {"tags": ["jobs"], "summary": "Move a job to a new position", "responses": {"200": {"description": "OK"}, "500": {"description": "Failed to reorder job"}}}
        },
        "/candidates": {
            "get": {"tags": ["candidates"], "summary": "List candidates with search, stage and job filters", "responses": {"200": {"description": "OK"}}}
        },
        "/candidates/export": {
            "get": {"tags": ["candidates"], "summary": "Export candidates as csv or xlsx", "responses": {"200": {"description": "File"}, "400": {"description": "Unsupported format"}}}
        },
        "/candidates/{id}": {
            "get": {"tags": ["candidates"], "summary": "Get a candidate with its job", "responses": {"200": {"description": "OK"}, "404": {"description": "Candidate not found"}}},
            "patch": {"tags": ["candidates"], "summary": "Update a candidate, recording stage changes", "responses": {"200": {"description": "OK"}, "404": {"description": "Candidate not found"}}}
        },
        "/candidates/{id}/timeline": {
            "get": {"tags": ["candidates"], "summary": "Candidate timeline, oldest first", "responses": {"200": {"description": "OK"}}}
        },
        "/assessments/{jobId}": {
            "get": {"tags": ["assessments"], "summary": "Get the assessment for a job", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["assessments"], "summary": "Create or replace the assessment for a job", "responses": {"200": {"description": "OK"}, "400": {"description": "Validation error"}}}
        },
        "/assessments/{jobId}/submit": {
            "post": {"tags": ["assessments"], "summary": "Submit candidate responses", "responses": {"200": {"description": "OK"}, "404": {"description": "Assessment not found"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "TalentFlow API",
	Description:      "Applicant-tracking data API with simulated network latency.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
