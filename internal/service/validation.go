package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"clinic-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequired        = "This field is required."
	msgBlank           = "This field may not be blank."
	msgInvalidEmail    = "Enter a valid email address."
	msgInvalidDate     = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgNegativeYears   = "Years of experience cannot be negative."
	msgUnrealisticYrs  = "Years of experience seems unrealistic."
	msgDoctorEmail     = "A doctor with this email already exists."
	msgDoctorLicense   = "A doctor with this license number already exists."
	msgPatientEmail    = "A patient with this email already exists."
	msgAlreadyAssigned = "This patient is already assigned to this doctor."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages line up with the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		return models.Specialty(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// validateAll checks every field of input, as on create
func validateAll(input interface{}) *ValidationError {
	return collect(validate.Struct(input))
}

// validatePresent checks only the fields the caller supplied, as on partial update
func validatePresent(input interface{}) *ValidationError {
	fields := presentFields(input)
	if len(fields) == 0 {
		return &ValidationError{}
	}
	return collect(validate.StructPartial(input, fields...))
}

// presentFields lists the struct field names whose pointer is non-nil
func presentFields(input interface{}) []string {
	val := reflect.Indirect(reflect.ValueOf(input))
	typ := val.Type()

	var fields []string
	for i := 0; i < typ.NumField(); i++ {
		f := val.Field(i)
		if f.Kind() == reflect.Ptr && !f.IsNil() {
			fields = append(fields, typ.Field(i).Name)
		}
	}
	return fields
}

func collect(err error) *ValidationError {
	out := &ValidationError{}
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out.Add(NonFieldErrors, err.Error())
		return out
	}
	for _, fe := range fieldErrs {
		out.Add(fe.Field(), messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return msgInvalidEmail
	case "datetime":
		return msgInvalidDate
	case "alphanum":
		return "Enter a valid value. This value may contain only letters and numbers."
	case "specialty":
		return fmt.Sprintf("%q is not a valid choice.", valueString(fe.Value()))
	case "min":
		if fe.Field() == "years_of_experience" {
			return msgNegativeYears
		}
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return msgBlank
			}
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max":
		if fe.Field() == "years_of_experience" {
			return msgUnrealisticYrs
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

func valueString(v interface{}) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}
	return fmt.Sprint(rv.Interface())
}

func invalidPK(id uint) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id)
}
