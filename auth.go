package investwise

import (
	"errors"
	"strings"

	"github.com/Welly0007/InvestWise/logger"
)

// SignupResult is the tagged outcome of a signup attempt.
type SignupResult int

const (
	SignupSuccess SignupResult = iota
	SignupDuplicateUserName
	SignupInvalidName
	SignupInvalidEmail
	SignupInvalidPassword
	SignupPasswordMismatch
	SignupFailed
)

func (r SignupResult) String() string {
	switch r {
	case SignupSuccess:
		return "SUCCESS"
	case SignupDuplicateUserName:
		return "DUPLICATE_USERNAME"
	case SignupInvalidName:
		return "INVALID_NAME"
	case SignupInvalidEmail:
		return "INVALID_EMAIL"
	case SignupInvalidPassword:
		return "INVALID_PASSWORD"
	case SignupPasswordMismatch:
		return "PASSWORD_MISMATCH"
	default:
		return "FAILED"
	}
}

// Message is the operator-facing wording for each outcome.
func (r SignupResult) Message() string {
	switch r {
	case SignupSuccess:
		return "account created"
	case SignupDuplicateUserName:
		return "this username is already taken"
	case SignupInvalidName:
		return "name must be non-empty and shorter than 100 characters"
	case SignupInvalidEmail:
		return "email must look like local@domain.tld and be shorter than 100 characters"
	case SignupInvalidPassword:
		return "password must be 8-100 characters with an uppercase letter and a digit or symbol"
	case SignupPasswordMismatch:
		return "passwords do not match"
	default:
		return "signup failed"
	}
}

// LoginResult is the outcome of a login attempt. Every failure collapses to
// the same unsuccessful zero value: nothing reveals which check failed.
type LoginResult struct {
	Success bool
	User    User
}

// AuthService orchestrates signup and login over the user store.
type AuthService struct {
	users    *UserStore
	verifier PasswordVerifier
}

// NewAuthService wires the service to a user store. A nil verifier defaults
// to the clear comparison.
func NewAuthService(users *UserStore, verifier PasswordVerifier) *AuthService {
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &AuthService{users: users, verifier: verifier}
}

// SignUp registers a new investor. Checks run in a fixed order: password
// confirmation first, before any store interaction, then entity validation
// (name, email, user name, password, first failure wins), then the
// duplicate lookup, then the insertion itself.
func (a *AuthService) SignUp(name, email, userName, password, confirmPassword string) SignupResult {
	if password != confirmPassword {
		return SignupPasswordMismatch
	}
	u := NewInvestor(name, email, userName, password)
	if err := u.Valid(); err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			switch fe.Field {
			case "name":
				return SignupInvalidName
			case "email":
				return SignupInvalidEmail
			case "password":
				return SignupInvalidPassword
			}
		}
		// The taxonomy has no dedicated result for a malformed user name.
		return SignupFailed
	}
	if _, exists := a.users.FindUser(userName); exists {
		return SignupDuplicateUserName
	}
	// The store re-checks both validity and uniqueness; after the checks
	// above the two layers must agree, so a rejection here is a plain
	// failure, not a classification.
	if !a.users.Add(u) {
		return SignupFailed
	}
	return SignupSuccess
}

// Login authenticates userName with password through the configured
// verifier. Empty or whitespace-only values, over-long user names, unknown
// users and wrong passwords all yield the same unsuccessful result.
func (a *AuthService) Login(userName, password string) LoginResult {
	if strings.TrimSpace(userName) == "" || strings.TrimSpace(password) == "" {
		return LoginResult{}
	}
	if len(userName) >= 50 {
		return LoginResult{}
	}
	u, ok := a.users.FindUser(userName)
	if !ok {
		logger.Get().Infow("login rejected, unknown user", "userName", userName)
		return LoginResult{}
	}
	if !a.verifier.Verify(u.Password, password) {
		logger.Get().Infow("login rejected, wrong credentials", "userName", userName)
		return LoginResult{}
	}
	return LoginResult{Success: true, User: u}
}
