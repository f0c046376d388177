package getannouncement

import (
	"classportal/internal/core/domain/announcement"
	"classportal/internal/core/domain/authz"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	service "classportal/internal/core/services/get_announcement"
	"classportal/internal/http/handlers/response"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Announcement response.Announcement `json:"announcement"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAnnouncementID := chi.URLParam(r, "announcementID")
	announcementID, err := strconv.ParseInt(rawAnnouncementID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid announcement ID", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{AnnouncementID: announcement.ID(announcementID)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, announcement.ErrAnnouncementDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, authz.ErrUnauthorized):
			response.RenderForbidden(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	a := response.Announcement{}
	a.FromDomainType(result.Announcement)
	response.Render(rw, Result{Announcement: a}, http.StatusOK)
}
