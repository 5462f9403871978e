package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

func (h *Handler) GetChecklistTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChecklistTemplate")
	defer span.End()

	kind, items, err := h.checklistService.Template(ctx, r.PathValue("type"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, checklistTemplateDTO{Type: string(kind), Items: items})
}

// GetCurrentChecklist returns the submission for (date, type), or null data when none exists.
func (h *Handler) GetCurrentChecklist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentChecklist")
	defer span.End()

	query := checklistQuery{
		Date: strings.TrimSpace(r.URL.Query().Get("date")),
		Type: strings.TrimSpace(r.URL.Query().Get("type")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, found, err := h.checklistService.Current(ctx, query.Date, query.Type)
	if err != nil {
		h.logger.WarnContext(ctx, "get current checklist failed", "date", query.Date, "type", query.Type, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, nil)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submissionToDTO(item))
}

func (h *Handler) SubmitChecklist(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitChecklist")
	defer span.End()

	var req submitChecklistRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.checklistService.Submit(ctx, usecase.SubmitChecklistInput{
		Date:      req.Date,
		Type:      req.Type,
		Checked:   req.Checked,
		Signature: req.Signature,
		Note:      req.Note,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit checklist failed", "date", req.Date, "type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeSuccess(ctx, w, status, submitResultToDTO(result))
}

func (h *Handler) ListChecklistHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChecklistHistory")
	defer span.End()

	days := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: days must be an integer", usecase.ErrInvalidInput))
			return
		}
		days = parsed
	}

	list, err := h.checklistService.History(ctx, days)
	if err != nil {
		h.logger.ErrorContext(ctx, "list checklist history failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]checklistSubmissionDTO, 0, len(list))
	for _, item := range list {
		items = append(items, submissionToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetChecklistSubmission(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChecklistSubmission")
	defer span.End()

	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: id must be an integer", usecase.ErrInvalidInput))
		return
	}

	detail, err := h.checklistService.Detail(ctx, id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detailToDTO(detail))
}
