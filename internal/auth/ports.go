package auth

import "context"

type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

var _ Verifier = (*SupabaseVerifier)(nil)
