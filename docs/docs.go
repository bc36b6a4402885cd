// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.StatusResponse"}}
                }
            }
        },
        "/resumes/parse": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Резюме"],
                "summary": "Разбор резюме",
                "parameters": [{"type": "file", "description": "Файл резюме (PDF или DOCX)", "name": "resume", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.parseResponse"}},
                    "400": {"description": "Файл не передан", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "413": {"description": "Файл слишком большой", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "415": {"description": "Формат не поддерживается", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "422": {"description": "Не удалось извлечь текст", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/match/score": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Оценка"],
                "summary": "Оценка соответствия резюме вакансии",
                "parameters": [{"description": "Текст вакансии и навыки резюме", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.scoreRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.scoreResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Оценка"],
                "summary": "История оценок",
                "parameters": [{"type": "integer", "description": "Количество записей (по умолчанию 10, максимум 200)", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/analysis.Record"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/skills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Навыки"],
                "summary": "Список навыков",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.skillItem"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Навыки"],
                "summary": "Добавить или изменить навык",
                "parameters": [{"description": "Определение навыка", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/skill.Definition"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/skill.Definition"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/skills/reload": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Навыки"],
                "summary": "Перезагрузить каталог навыков",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.reloadResponse"}},
                    "503": {"description": "Хранилище недоступно, действует прежний каталог", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/skills/{name}": {
            "delete": {
                "tags": ["Навыки"],
                "summary": "Удалить навык",
                "parameters": [{"type": "string", "description": "Каноническое имя навыка", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "presenter.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "details": {"type": "string"}}
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.extractedProfile": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.parseResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "filename": {"type": "string"},
                "extracted": {"$ref": "#/definitions/handlers.extractedProfile"}
            }
        },
        "handlers.parsedResume": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "handlers.scoreRequest": {
            "type": "object",
            "required": ["jd"],
            "properties": {
                "jd": {"type": "string"},
                "resumeSkills": {"type": "array", "items": {"type": "string"}},
                "parsed": {"$ref": "#/definitions/handlers.parsedResume"}
            }
        },
        "handlers.scoreResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "score": {"type": "integer"},
                "matched": {"type": "array", "items": {"type": "string"}},
                "missing": {"type": "array", "items": {"type": "string"}},
                "jdSkills": {"type": "array", "items": {"type": "string"}},
                "persisted": {"type": "boolean"},
                "warning": {"type": "string"}
            }
        },
        "analysis.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "filename": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "jd": {"type": "string"},
                "matched": {"type": "array", "items": {"type": "string"}},
                "missing": {"type": "array", "items": {"type": "string"}},
                "score": {"type": "integer"},
                "createdAt": {"type": "string"}
            }
        },
        "handlers.skillItem": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "category": {"type": "string"}}
        },
        "handlers.reloadResponse": {
            "type": "object",
            "properties": {"ok": {"type": "boolean"}, "count": {"type": "integer"}}
        },
        "skill.Definition": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "synonyms": {"type": "array", "items": {"type": "string"}},
                "category": {"type": "string"},
                "negativeGuards": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resumematch API",
	Description:      "Извлечение навыков из резюме и оценка соответствия резюме тексту вакансии.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
