package listlessons

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	service "classportal/internal/core/services/list_lessons"
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
	Lessons []response.Lesson `json:"lessons"`
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

	lessons := make([]response.Lesson, 0, len(result.Lessons))
	for _, dl := range result.Lessons {
		l := response.Lesson{}
		l.FromDomainType(dl)
		lessons = append(lessons, l)
	}
	response.Render(rw, Result{Lessons: lessons}, http.StatusOK)
}
