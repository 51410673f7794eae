package investwise

import "golang.org/x/crypto/bcrypt"

// PasswordVerifier checks a login candidate against the stored credential.
// It is the single seam where a real hashing scheme can replace the clear
// comparison without touching the store contract.
type PasswordVerifier interface {
	Verify(stored, candidate string) bool
}

// PlainVerifier compares the candidate to the stored credential byte for
// byte. This is the historical default; it offers no security.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, candidate string) bool { return stored == candidate }

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}

// HashPassword derives the stored form of a password for deployments using
// BcryptVerifier. Note that signup validation applies to the clear
// password, before hashing.
func HashPassword(clear string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(clear), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
