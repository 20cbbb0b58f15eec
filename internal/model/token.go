package model

import "time"

// RefreshToken models an entry in the `refresh_tokens` table. Each
// refresh token belongs to an enterprise account and carries metadata
// for expiry and revocation. The plain token is never stored; only its
// SHA-256 hash.
//
// Fields:
//  ID           – primary key identifier.
//  EnterpriseID – owner of the token.
//  TokenHash    – SHA-256 hex digest of the token value.
//  ExpiresAt    – expiration timestamp of the token.
//  RevokedAt    – when the token was revoked (null if still active).
//  CreatedAt    – timestamp of creation.
type RefreshToken struct {
	ID           uint64     // refresh_tokens.id
	EnterpriseID uint64     // refresh_tokens.enterprise_id
	TokenHash    string     // refresh_tokens.token_hash
	ExpiresAt    time.Time  // refresh_tokens.expires_at
	RevokedAt    *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt    time.Time  // refresh_tokens.created_at
}
