package httpapi

import "net/http"

func (h *Handler) GetPriorities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPriorities")
	defer span.End()

	state, err := h.priorityService.State(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load priorities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, priorityStateToDTO(state))
}

func (h *Handler) TogglePriority(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TogglePriority")
	defer span.End()

	var req togglePriorityRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.priorityService.TogglePriority(ctx, req.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle priority failed", "event_id", req.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, priorityToggleDTO{
		ID:       result.ID,
		Priority: result.Priority,
		EventIDs: result.EventIDs,
	})
}

func (h *Handler) ToggleTag(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleTag")
	defer span.End()

	var req toggleTagRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.priorityService.ToggleTag(ctx, req.ID, req.Tag)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle tag failed", "event_id", req.ID, "tag", req.Tag, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tagToggleDTO{ID: result.ID, Tags: result.Tags})
}
