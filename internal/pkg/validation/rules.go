// Package validation holds the input rules shared by the services. Structural
// checks on request bodies happen at binding time; these cover the fields
// whose format the binding tags cannot express.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// NetIDPattern matches network IDs as issued by the university: a letter
// followed by 1-31 letters or digits.
var NetIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]{1,31}$`)

// PasswordMinLength is the minimum staff password length.
const PasswordMinLength = 8

var validate = validator.New()

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return validate.Var(value, "required,email") == nil
}

// IsValidNetID reports whether the value is a plausible network ID.
func IsValidNetID(value string) bool {
	return NetIDPattern.MatchString(value)
}
