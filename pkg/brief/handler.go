package brief

import (
	"errors"
	"net/http"

	"github.com/meirhorwitz/site-api/internal/rest"
	"github.com/meirhorwitz/site-api/pkg/mail"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	// production hides failure detail from 500 responses.
	production bool
}

func NewHandler(service *Service, production bool) *Handler {
	return &Handler{service: service, production: production}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	form, err := ParseForm(r)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			rest.Error(w, http.StatusBadRequest, RequestMessage(err))
			return
		}
		log.Errorf("failed to parse brief submission: %v", err)
		h.internalError(w, err)
		return
	}

	if err := form.Validate(); err != nil {
		rest.Error(w, http.StatusBadRequest, RequestMessage(err))
		return
	}

	attachments := make([]mail.Attachment, 0, len(form.Files))
	for _, f := range form.Files {
		attachments = append(attachments, mail.Attachment{
			Filename:    f.Filename,
			ContentType: f.ContentType,
			Data:        f.Data,
		})
	}

	h.service.Submit(r.Context(), Submission{
		Name:        form.Fields["name"],
		Email:       form.Fields["email"],
		Brief:       form.Fields["brief"],
		Attachments: attachments,
	})

	rest.JSON(w, http.StatusOK, submitResponse{Success: true, Message: "Brief submitted successfully."})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	message := "Internal server error."
	if !h.production {
		message = err.Error()
	}
	rest.Error(w, http.StatusInternalServerError, message)
}
