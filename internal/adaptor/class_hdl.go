package adaptor

import (
	"net/http"

	"fitness-booking/internal/dto/request"
	"fitness-booking/internal/usecase"
	"fitness-booking/pkg/utils"

	"go.uber.org/zap"
)

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// ListClasses handles GET /api/classes (public)
func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// CreateClass handles POST /api/classes (admin)
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClassRequest
	if err := decodeJSON(w, r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	class, err := h.service.CreateClass(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create class")
		return
	}

	utils.ResponseCreated(w, "success", class)
}
