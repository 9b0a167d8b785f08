package letter

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FormInput is what the candidate fills in for one letter.
type FormInput struct {
	CompanyName     string `json:"company_name" mapstructure:"company_name" validate:"required"`
	CompanyWebsite  string `json:"company_website" mapstructure:"company_website"`
	RoleName        string `json:"role_name" mapstructure:"role_name"`
	RoleDescription string `json:"role_jd" mapstructure:"role_jd"`
}

// messages holds user facing text for failed validations keyed by json field name.
var messages = map[string]string{
	"company_name": "Company name is required",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Normalize returns a copy of the input with all fields trimmed.
func (in FormInput) Normalize() FormInput {
	return FormInput{
		CompanyName:     strings.TrimSpace(in.CompanyName),
		CompanyWebsite:  strings.TrimSpace(in.CompanyWebsite),
		RoleName:        strings.TrimSpace(in.RoleName),
		RoleDescription: strings.TrimSpace(in.RoleDescription),
	}
}

// Validate checks the normalized input. The returned error is a *ValidationError.
func (in FormInput) Validate() error {
	err := inputValidator().Struct(in.Normalize())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	field := verrs[0].Field()
	message, ok := messages[field]
	if !ok {
		message = field + " is invalid"
	}

	return &ValidationError{Field: field, Message: message}
}

// RoleOrDefault returns the role name or the given default when it is empty.
func (in FormInput) RoleOrDefault(def string) string {
	if role := strings.TrimSpace(in.RoleName); role != "" {
		return role
	}
	return def
}
