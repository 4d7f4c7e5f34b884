package service

// Identity carries the claims this service reads from a verified
// identity-provider session token.
type Identity struct {
	UserID   string // Provider-issued subject, the canonical user ID.
	Name     string
	Email    string
	ImageURL string
	Role     string // "student" or "educator".
}

// TokenService verifies identity-provider session tokens. Issuance lives
// with the provider; this service never mints tokens.
type TokenService interface {
	// VerifySessionToken checks the token's signature and standard claims
	// and returns the embedded identity.
	VerifySessionToken(token string) (*Identity, error)
}
