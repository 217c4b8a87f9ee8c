package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"hearthly-api/internal/apperror"
	"hearthly-api/internal/logs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// gotrueGetUserHook is swapped in tests.
var gotrueGetUserHook = func(c gotrue.Client) (*types.UserResponse, error) {
	return c.GetUser()
}

// nowHook is swapped in tests.
var nowHook = time.Now

// SupabaseVerifier resolves bearer tokens against the Supabase auth service.
// Results are never cached.
type SupabaseVerifier struct {
	auth    gotrue.Client
	timeout time.Duration
}

func NewSupabaseVerifier(url, anonKey string, timeout time.Duration) (*SupabaseVerifier, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase API key is required")
	}

	client, err := supabase.NewClient(url, anonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseVerifier{
		auth:    client.Auth.WithClient(http.Client{Timeout: timeout}),
		timeout: timeout,
	}, nil
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	log := logs.FromContext(ctx)

	if token == "" {
		return Identity{}, apperror.Unauthorized("empty token")
	}
	if expired(token) {
		log.Debug("token rejected locally", zap.String("reason", "expired"))
		return Identity{}, apperror.Unauthorized("token expired")
	}

	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	type result struct {
		user *types.UserResponse
		err  error
	}
	done := make(chan result, 1)
	go func() {
		user, err := gotrueGetUserHook(v.auth.WithToken(token))
		done <- result{user: user, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-ctx.Done():
		log.Warn("identity lookup timed out", zap.Error(ctx.Err()))
		return Identity{}, apperror.Unauthorized("identity service timeout")
	}

	if res.err != nil {
		log.Info("identity lookup rejected", zap.Error(res.err))
		return Identity{}, apperror.Unauthorized("identity lookup failed")
	}
	if res.user == nil || res.user.ID == uuid.Nil {
		return Identity{}, apperror.Unauthorized("identity has no user id")
	}

	return Identity{UserID: res.user.ID.String(), Email: res.user.Email}, nil
}

// expired reports whether token is a JWT whose exp claim has passed. Tokens
// that do not parse are left to the auth service.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(nowHook())
}
