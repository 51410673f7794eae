package investwise

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// UserRole tags the user variant. Deployments run with a single active
// role; the CLI always creates investors.
type UserRole string

const (
	RoleInvestor UserRole = "investor"
	RoleNormal   UserRole = "normal"
)

// User is an account record. Identity is the user name: two users are the
// same record iff their user names are equal, whatever the other fields
// hold. The password is stored as given; whether it is a clear string or a
// hash is the concern of the PasswordVerifier in use.
type User struct {
	Role     UserRole `json:"role"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	UserName string   `json:"userName"`
	Password string   `json:"password"`
}

// NewInvestor creates an investor user.
func NewInvestor(name, email, userName, password string) User {
	return User{Role: RoleInvestor, Name: name, Email: email, UserName: userName, Password: password}
}

// NewNormalUser creates a normal (non-investing) user.
func NewNormalUser(name, email, userName, password string) User {
	return User{Role: RoleNormal, Name: name, Email: email, UserName: userName, Password: password}
}

// Equal reports whether o is the same record, by user name only.
func (u User) Equal(o User) bool { return u.UserName == o.UserName }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("userpassword", validPassword); err != nil {
		panic(err)
	}
	return v
}

// validPassword is the canonical password rule: 8 to 100 characters, at
// least one uppercase letter, and at least one digit or symbol from
// !@#$%^&*. Earlier snapshots of the rule disagreed on the symbol class;
// this narrow set is the documented choice.
func validPassword(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if len(p) < 8 || len(p) > 100 {
		return false
	}
	var upper, strong bool
	for _, r := range p {
		if unicode.IsUpper(r) {
			upper = true
		}
		if strings.ContainsRune("0123456789!@#$%^&*", r) {
			strong = true
		}
	}
	return upper && strong
}

// FieldError names the first user field that failed validation.
type FieldError struct {
	Field string // "name", "email", "userName" or "password"
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }

// Valid checks the user field by field, name first, then email, user name
// and password; the first failure wins.
func (u User) Valid() error {
	checks := []struct {
		field string
		value string
		rule  string
	}{
		{"name", u.Name, "required,max=99"},
		{"email", u.Email, "required,email,max=99"},
		{"userName", u.UserName, "required,max=49"},
		{"password", u.Password, "userpassword"},
	}
	for _, c := range checks {
		if err := validate.Var(c.value, c.rule); err != nil {
			return &FieldError{Field: c.field, cause: err}
		}
	}
	return nil
}
