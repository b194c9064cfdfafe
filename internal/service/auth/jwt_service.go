package auth

import (
	"context"
	"time"

	"github.com/pharmabolt/pharmabolt-api/internal/domain"
)

// TokenService defines operations for issuing and verifying the signed
// bearer tokens that authenticate API requests.
type TokenService interface {
	// GenerateToken creates a signed token encoding the user's ID and
	// role. The token expires after the configured lifetime; there is
	// no revocation, so it stays valid for that full window regardless
	// of subsequent account changes.
	GenerateToken(ctx context.Context, userID int64, role domain.Role) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. Returns ErrExpiredToken when the token has expired and
	// ErrInvalidToken for malformed payloads or bad signatures.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded payload of a verified token. It exists only for
// the lifetime of the request that presented the token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Role is the user's role at issuance time. It is not re-checked
	// against the store on later requests.
	Role domain.Role `json:"role"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
