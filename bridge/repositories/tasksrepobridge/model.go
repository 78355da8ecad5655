package tasksrepobridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrazmi/taskapi/core/repositories/tasksrepo"
	"github.com/jrazmi/taskapi/sdk/validation"
)

// Task is the wire form of a task.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date"`
	CreateDate  string  `json:"create_date"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
}

// Encode implements the encoder interface.
func (t Task) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json; charset=utf-8", err
}

// NewTaskInput is the body of a create request. Any other field in the
// body, id and create_date included, is ignored.
type NewTaskInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	DueDate     string  `json:"due_date" validate:"required,flexdate"`
	Priority    string  `json:"priority" validate:"required,oneof=low medium high"`
	Category    string  `json:"category" validate:"required"`
}

// Validate checks the wire constraints of the request.
func (i NewTaskInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fieldErrors(err)
	}
	return nil
}

// UpdateTaskInput is the body of an update request. Absent or null fields
// are left unchanged; an empty description clears it.
type UpdateTaskInput struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date" validate:"omitnil,flexdate"`
	Priority    *string `json:"priority" validate:"omitnil,oneof=low medium high"`
	Category    *string `json:"category" validate:"omitnil,min=1"`
	Status      *string `json:"status" validate:"omitnil,oneof='not done' done"`
}

// Validate checks the wire constraints of the request.
func (i UpdateTaskInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fieldErrors(err)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("flexdate", func(fl validator.FieldLevel) bool {
		return validation.IsDate(fl.Field().String())
	})

	return v
}

// fieldErrors turns validator failures into the service's validation error
// so both layers report violations the same way.
func fieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &tasksrepo.ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, tasksrepo.FieldError{
			Field: fe.Field(),
			Err:   fieldMessage(fe),
		})
	}
	return ve
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not be greater than %s characters", fe.Param())
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), "'", ""))
	case "flexdate":
		return "must be a valid date"
	default:
		return "is invalid"
	}
}
