package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerScheduleRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
}

func registerPriorityRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/priorities", handler.GetPriorities)
	mux.HandleFunc("POST /v1/priorities/toggle", handler.TogglePriority)
	mux.HandleFunc("POST /v1/tags/toggle", handler.ToggleTag)
}

func registerChecklistRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/checklist/templates/{type}", handler.GetChecklistTemplate)
	mux.HandleFunc("GET /v1/checklist/current", handler.GetCurrentChecklist)
	mux.HandleFunc("POST /v1/checklist/submissions", handler.SubmitChecklist)
	mux.HandleFunc("GET /v1/checklist/history", handler.ListChecklistHistory)
	mux.HandleFunc("GET /v1/checklist/submissions/{id}", handler.GetChecklistSubmission)
}
