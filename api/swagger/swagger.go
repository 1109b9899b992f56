package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduVerse API",
        "description": "Student, teacher, and parent portal backend with offline fallback data and an AI study coach",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Users",
            "description": "Profiles, achievements, and mood"
        },
        {
            "name": "Tasks",
            "description": "Homework, projects, and exam preparation"
        },
        {
            "name": "Habits",
            "description": "Daily habit tracking"
        },
        {
            "name": "Timetable",
            "description": "Weekly class schedule"
        },
        {
            "name": "Export",
            "description": "CSV, PDF, XLSX, and iCalendar downloads"
        },
        {
            "name": "Messages",
            "description": "Conversations between users"
        },
        {
            "name": "Announcements",
            "description": "School notice board"
        },
        {
            "name": "Coach",
            "description": "AI study coach"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List profiles",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get a profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/users/{id}/mood": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get the last reported mood",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Report the current mood",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/MoodRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/achievements": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List achievements",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/users/{id}/tasks": {
            "get": {
                "tags": [
                    "Tasks"
                ],
                "summary": "List a user's tasks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Assign a task to a user",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Teachers only",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "X-User-Role",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TaskRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/users/{id}/tasks/{taskId}": {
            "put": {
                "tags": [
                    "Tasks"
                ],
                "summary": "Replace a task",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "taskId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TaskRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/users/{id}/tasks/export": {
            "get": {
                "tags": [
                    "Export"
                ],
                "summary": "Download a user's tasks",
                "produces": [
                    "text/csv",
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "text/calendar"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf",
                            "xlsx",
                            "ics"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/users/{id}/habits": {
            "get": {
                "tags": [
                    "Habits"
                ],
                "summary": "List a user's habits",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/users/{id}/habits/{habitId}": {
            "put": {
                "tags": [
                    "Habits"
                ],
                "summary": "Replace a habit",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "habitId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/HabitRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/users/{id}/habits/{habitId}/complete": {
            "post": {
                "tags": [
                    "Habits"
                ],
                "summary": "Mark a habit done for today",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "habitId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/users/{id}/timetable": {
            "get": {
                "tags": [
                    "Timetable"
                ],
                "summary": "Get a user's weekly timetable",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Timetable"
                ],
                "summary": "Add a class to the timetable",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TimetableEntryRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/users/{id}/timetable/export": {
            "get": {
                "tags": [
                    "Export"
                ],
                "summary": "Download a user's timetable",
                "produces": [
                    "text/csv",
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
                    "text/calendar"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf",
                            "xlsx",
                            "ics"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Unsupported format",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/users/{id}/conversations": {
            "get": {
                "tags": [
                    "Messages"
                ],
                "summary": "List a user's conversations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/v1/conversations/{id}/messages": {
            "get": {
                "tags": [
                    "Messages"
                ],
                "summary": "List the messages of a conversation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Messages"
                ],
                "summary": "Send a message as the acting user",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/MessageRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/announcements": {
            "get": {
                "tags": [
                    "Announcements"
                ],
                "summary": "List announcements, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Announcements"
                ],
                "summary": "Publish an announcement",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Teachers only",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "X-User-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "X-User-Role",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AnnouncementRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/explain": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Explain a concept",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ExplainRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/hint": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Get a homework hint",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/HintRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/study-plan": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Plan today's study sessions from pending tasks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StudyPlanRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/roadmap": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Build a career roadmap",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RoadmapRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/quiz": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Generate a three question quiz",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/QuizRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/sessions/{id}/messages": {
            "post": {
                "tags": [
                    "Coach"
                ],
                "summary": "Ask the coach within a session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ChatRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/coach/sessions/{id}": {
            "get": {
                "tags": [
                    "Coach"
                ],
                "summary": "Get a coach session transcript",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        }
    },
    "definitions": {
        "TaskRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "TODO",
                        "IN_PROGRESS",
                        "COMPLETED"
                    ]
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "HOMEWORK",
                        "PROJECT",
                        "EXAM_PREP"
                    ]
                },
                "description": {
                    "type": "string"
                },
                "estimatedTimeMinutes": {
                    "type": "integer"
                }
            },
            "required": [
                "title",
                "subject",
                "dueDate"
            ]
        },
        "HabitRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "streak": {
                    "type": "integer"
                },
                "completedDates": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "STUDY",
                        "HEALTH",
                        "MINDFULNESS"
                    ]
                }
            },
            "required": [
                "name",
                "category"
            ]
        },
        "TimetableEntryRequest": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "string",
                    "enum": [
                        "Monday",
                        "Tuesday",
                        "Wednesday",
                        "Thursday",
                        "Friday"
                    ]
                },
                "startTime": {
                    "type": "string"
                },
                "endTime": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "room": {
                    "type": "string"
                },
                "teacher": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            },
            "required": [
                "day",
                "startTime",
                "endTime",
                "subject"
            ]
        },
        "MessageRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            },
            "required": [
                "text"
            ]
        },
        "AnnouncementRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "HIGH",
                        "NORMAL",
                        "LOW"
                    ]
                },
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            },
            "required": [
                "title",
                "content"
            ]
        },
        "MoodRequest": {
            "type": "object",
            "properties": {
                "mood": {
                    "type": "string",
                    "enum": [
                        "HAPPY",
                        "NEUTRAL",
                        "STRESSED",
                        "TIRED"
                    ]
                }
            },
            "required": [
                "mood"
            ]
        },
        "ExplainRequest": {
            "type": "object",
            "properties": {
                "concept": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "grade": {
                    "type": "string"
                }
            },
            "required": [
                "concept",
                "subject"
            ]
        },
        "HintRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                }
            },
            "required": [
                "description",
                "subject"
            ]
        },
        "StudyPlanRequest": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "string"
                },
                "availableHours": {
                    "type": "number"
                }
            },
            "required": [
                "userId",
                "availableHours"
            ]
        },
        "RoadmapRequest": {
            "type": "object",
            "properties": {
                "career": {
                    "type": "string"
                }
            },
            "required": [
                "career"
            ]
        },
        "QuizRequest": {
            "type": "object",
            "properties": {
                "subject": {
                    "type": "string"
                },
                "topic": {
                    "type": "string"
                }
            },
            "required": [
                "subject",
                "topic"
            ]
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                }
            },
            "required": [
                "text"
            ]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
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
