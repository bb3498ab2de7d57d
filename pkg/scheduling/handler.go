package scheduling

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meirhorwitz/site-api/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type slotsResponse struct {
	Success bool     `json:"success"`
	Slots   []string `json:"slots"`
}

type bookRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Details  string `json:"details"`
	DateTime string `json:"dateTime"`
	Lang     string `json:"lang"`
}

type bookResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	MeetLink string `json:"meetLink"`
}

func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.AvailableSlots(r.Context())
	if err != nil {
		log.Errorf("failed to fetch slots: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Could not retrieve slots.")
		return
	}

	rest.JSON(w, http.StatusOK, slotsResponse{Success: true, Slots: slots})
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var dto bookRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, "Missing required fields.")
		return
	}

	result, err := h.service.Book(r.Context(), BookingRequest{
		Name:     dto.Name,
		Email:    dto.Email,
		Details:  dto.Details,
		DateTime: dto.DateTime,
		Lang:     ParseLanguage(dto.Lang),
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			rest.Error(w, http.StatusBadRequest, RequestMessage(err))
			return
		}
		log.Errorf("failed to schedule meeting: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to schedule meeting.")
		return
	}

	rest.JSON(w, http.StatusOK, bookResponse{
		Success:  true,
		Message:  "Meeting scheduled successfully.",
		MeetLink: result.MeetLink,
	})
}
