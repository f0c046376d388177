package listannouncements

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	service "classportal/internal/core/services/list_announcements"
	"classportal/internal/http/handlers/response"
	"errors"
	"net/http"
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
	Announcements []response.Announcement `json:"announcements"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	announcements := make([]response.Announcement, 0, len(result.Announcements))
	for _, da := range result.Announcements {
		a := response.Announcement{}
		a.FromDomainType(da)
		announcements = append(announcements, a)
	}
	response.Render(rw, Result{Announcements: announcements}, http.StatusOK)
}
