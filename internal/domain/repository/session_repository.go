package repository

import "context"

// SessionStore tracks live identity-provider sessions. A session is keyed by
// the provider subject id plus the token id, so a single token can be revoked
// without touching the user's other sessions.
type SessionStore interface {
	Save(ctx context.Context, userID, tokenID string) error
	Exists(ctx context.Context, userID, tokenID string) (bool, error)
	Destroy(ctx context.Context, userID, tokenID string) error
	DestroyAll(ctx context.Context, userID string) error
}
