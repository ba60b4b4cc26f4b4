package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors converts a binding error into a field->message map shaped like
// the envelope's failure results. Field names are lowercased to match the
// JSON payload keys.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				out[field] = "This field is required."
			case "email":
				out[field] = "Enter a valid email address."
			case "max":
				out[field] = fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
			default:
				out[field] = "Invalid value."
			}
		}
		return out
	}
	out["detail"] = err.Error()
	return out
}
