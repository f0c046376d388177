package updateuser

import (
	c "classportal/internal/core/domain/common"
	e "classportal/internal/core/domain/errors"
	"classportal/internal/core/domain/user"
	"classportal/internal/core/services"
	service "classportal/internal/core/services/update_user"
	"classportal/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	DoPhoneNumberUpdate bool    `json:"do_phone_number_update"`
	PhoneNumber         *string `json:"phone_number"`
	DoGenderUpdate      bool    `json:"do_gender_update"`
	Gender              *string `json:"gender"`
	DoGradeUpdate       bool    `json:"do_grade_update"`
	Grade               *string `json:"grade"`
	DoSchoolUpdate      bool    `json:"do_school_update"`
	School              *string `json:"school"`
	DoSubjectUpdate     bool    `json:"do_subject_update"`
	Subject             *string `json:"subject"`
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
		validation.Field(&i.Name, validation.Length(1, 256)),
		validation.Field(&i.Email, is.Email, validation.Length(0, 512)),
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

	serviceInput := service.Input{
		DoPhoneNumberUpdate: input.DoPhoneNumberUpdate,
		PhoneNumber:         optionalString(input.PhoneNumber),
		DoGenderUpdate:      input.DoGenderUpdate,
		Gender:              optionalString(input.Gender),
		DoGradeUpdate:       input.DoGradeUpdate,
		Grade:               optionalString(input.Grade),
		DoSchoolUpdate:      input.DoSchoolUpdate,
		School:              optionalString(input.School),
		DoSubjectUpdate:     input.DoSubjectUpdate,
		Subject:             optionalString(input.Subject),
	}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.Email != nil {
		serviceInput.DoEmailUpdate = true
		serviceInput.Email = c.NewEmail(*input.Email)
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrEmailAlreadyExists):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	u := response.User{}
	u.FromDomainUser(result.User)
	response.Render(rw, Result{User: u}, http.StatusOK)
}
