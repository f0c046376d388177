package updatepreferences

import (
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	service "classportal/internal/core/services/update_preferences"
	"classportal/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	Language *string `json:"language"`
	Theme    *string `json:"theme"`
}

type Result struct {
	Preferences response.Preferences `json:"preferences"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Language, validation.Length(1, 16)),
		validation.Field(&i.Theme, validation.In("light", "dark")),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{}
	if input.Language != nil {
		serviceInput.DoLanguageUpdate = true
		serviceInput.Language = *input.Language
	}
	if input.Theme != nil {
		serviceInput.DoThemeUpdate = true
		serviceInput.Theme = *input.Theme
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(rw, Result{Preferences: response.Preferences{
		Language: result.Preferences.Language,
		Theme:    result.Preferences.Theme,
	}}, http.StatusOK)
}
