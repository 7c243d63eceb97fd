package service

// SessionClaims are the identity claims carried by a session token.
type SessionClaims struct {
	UserID   string
	UserName string
}

// TokenService issues and validates bearer session tokens.
type TokenService interface {
	// Generate creates a signed session token for the user.
	Generate(userID, userName string) (string, error)

	// Validate parses and verifies a token string, returning its claims.
	Validate(tokenString string) (*SessionClaims, error)
}
