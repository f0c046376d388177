package signup

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	signup "classportal/internal/core/services/sign_up"
	"classportal/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[signup.Input, signup.Result]
}

func New(
	service services.Service[signup.Input, signup.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Role        string  `json:"role"`
	PhoneNumber *string `json:"phone_number"`
	Gender      *string `json:"gender"`
	Grade       *string `json:"grade"`
	School      *string `json:"school"`
	Subject     *string `json:"subject"`
}

type Result struct {
	User response.User `json:"user"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Password, validation.Required, validation.Length(user.MinPasswordLength, 512)),
		validation.Field(&i.Role, validation.Required, validation.In("student", "teacher")),
		validation.Field(&i.PhoneNumber, validation.Length(0, 32)),
		validation.Field(&i.Gender, validation.Length(0, 32)),
		validation.Field(&i.Grade, validation.Length(0, 32)),
		validation.Field(&i.School, validation.Length(0, 256)),
		validation.Field(&i.Subject, validation.Length(0, 256)),
	)
}

func optionalString(v *string) c.Optional[string] {
	if v == nil {
		return c.Optional[string]{}
	}
	return c.NewOptional(*v, true)
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
	role, err := user.ParseRole(input.Role)
	if err != nil {
		response.RenderError(rw, "invalid role", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signup.Input{
			Name:        input.Name,
			Email:       c.NewEmail(input.Email),
			Password:    user.RawPassword(input.Password),
			Role:        role,
			PhoneNumber: optionalString(input.PhoneNumber),
			Gender:      optionalString(input.Gender),
			Grade:       optionalString(input.Grade),
			School:      optionalString(input.School),
			Subject:     optionalString(input.Subject),
			Preferences: user.DefaultPreferences(),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusCreated)
}
