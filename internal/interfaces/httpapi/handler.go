package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchday-schedule/internal/platform/logging"
	"github.com/riskibarqy/matchday-schedule/internal/usecase"
)

// maxRequestBody bounds JSON request payloads.
const maxRequestBody = 1 << 20

type Handler struct {
	scheduleService  *usecase.ScheduleService
	priorityService  *usecase.PriorityService
	checklistService *usecase.ChecklistService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	priorityService *usecase.PriorityService,
	checklistService *usecase.ChecklistService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scheduleService:  scheduleService,
		priorityService:  priorityService,
		checklistService: checklistService,
		logger:           logger.Named("httpapi"),
		validator:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, out)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
