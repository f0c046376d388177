package events

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/logging"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	s "classportal/internal/core/services/get_user_by_session_token"
	"classportal/internal/http/handlers/auth"
	"classportal/internal/http/handlers/response"
	announcementcreated "classportal/internal/rabbitmq/consumers/announcement_created"
	"errors"
	"net/http"

	"github.com/r3labs/sse/v2"
)

type Handler struct {
	log       logging.Logger
	service   services.Service[s.Input, s.Result]
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	service services.Service[s.Input, s.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, sseServer: sseServer, service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		// EventSource cannot set headers, so the token may come as a
		// query parameter instead.
		rawToken := r.URL.Query().Get("token")
		if rawToken == "" || len(rawToken) > auth.AUTH_TOKEN_MAX_LEN {
			response.RenderUnauthorized(rw)
			return
		}
		token = user.SessionToken(rawToken)
	}

	result, err := h.service.Run(r.Context(), s.Input{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	streamID := r.URL.Query().Get("stream")
	if streamID != announcementcreated.StreamID {
		response.RenderError(rw, "invalid stream", http.StatusBadRequest)
		return
	}

	h.log.Info(
		r.Context(),
		"Subscribed to announcement events.",
		logging.Entry("userID", result.User.ID),
		logging.Entry("streamID", streamID),
	)
	// The stream is shared by all subscribers, so it is never removed on
	// client disconnect.
	h.sseServer.ServeHTTP(rw, r)
}
