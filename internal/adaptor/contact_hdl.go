package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/usecase"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// CreateMessage handles POST /api/contact (public)
func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req request.ContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CreateMessage(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create contact message")
		return
	}

	utils.ResponseCreated(w, result.Message, result)
}

// ==================== ADMIN METHODS ====================

// GetMessages handles GET /api/admin/contact-messages (admin only)
func (h *ContactHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)
	unreadOnly := query.Get("unread") == "true"

	messages, err := h.service.GetMessages(r.Context(), req, unreadOnly)
	if err != nil {
		h.handleServiceError(w, err, "get contact messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}

// MarkMessageRead handles PUT /api/admin/contact-messages/{id}/read (admin only)
func (h *ContactHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "id")
	if messageID == "" {
		utils.ResponseBadRequest(w, "Message ID is required", nil)
		return
	}

	if err := h.service.MarkMessageRead(r.Context(), messageID); err != nil {
		h.handleServiceError(w, err, "mark contact message read")
		return
	}

	utils.ResponseSuccess(w, "Message marked as read", nil)
}

func (h *ContactHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
