package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imgurshot/internal/common"
	"github.com/dmitrijs2005/imgurshot/internal/cryptox"
	"github.com/dmitrijs2005/imgurshot/internal/dbx"
	"github.com/dmitrijs2005/imgurshot/internal/repositories/credentials"
)

func (s *Service) credsRepo() credentials.Repository {
	return credentials.NewSQLiteRepository(s.db)
}

// Authenticate performs the one-shot exchange of an authorization code for
// tokens, persists the username and sealed refresh token, and caches the
// access token (starting its 1-hour validity clock). Unlike the original
// client, a failed exchange is reported to the caller instead of only being
// logged.
func (s *Service) Authenticate(ctx context.Context, code string) error {
	grant, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		s.log.Error(ctx, "authorization code exchange failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrAuthExchangeFailed, err)
	}

	if err := s.saveCredentials(ctx, grant.AccountUsername, grant.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	s.setAccessToken(grant.AccessToken)

	s.log.Info(ctx, "authenticated", "username", grant.AccountUsername)
	return nil
}

// saveCredentials persists username and the sealed refresh token in a single
// transaction.
func (s *Service) saveCredentials(ctx context.Context, username, refreshToken string) error {
	sealed, err := s.sealToken(refreshToken)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.KeyUsername, []byte(username)); err != nil {
			return err
		}
		return repo.Set(ctx, common.KeyRefreshToken, sealed)
	})
}

// RequestAccessToken refreshes the cached access token from the persisted
// refresh token. On success the validity clock restarts; on failure the
// previous token (if any) is left untouched and the error is returned so the
// caller can react instead of silently waiting.
func (s *Service) RequestAccessToken(ctx context.Context) error {
	refreshToken, err := s.loadRefreshToken(ctx)
	if err != nil {
		return err
	}

	grant, err := s.client.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		s.log.Error(ctx, "access token refresh failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrTokenRefreshFailed, err)
	}

	s.setAccessToken(grant.AccessToken)
	s.log.Debug(ctx, "access token refreshed")
	return nil
}

func (s *Service) loadRefreshToken(ctx context.Context) (string, error) {
	sealed, err := s.credsRepo().Get(ctx, common.KeyRefreshToken)
	if err != nil {
		return "", err
	}
	if len(sealed) == 0 {
		return "", common.ErrNotAuthenticated
	}
	return s.openToken(sealed)
}

// IsAuthenticated reports whether both the username and the refresh token
// are present in persisted storage.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	repo := s.credsRepo()

	username, err := repo.Get(ctx, common.KeyUsername)
	if err != nil || len(username) == 0 {
		return false
	}
	refreshToken, err := repo.Get(ctx, common.KeyRefreshToken)
	return err == nil && len(refreshToken) > 0
}

// Username returns the persisted account username, or "" when logged out.
func (s *Service) Username(ctx context.Context) string {
	username, err := s.credsRepo().Get(ctx, common.KeyUsername)
	if err != nil {
		return ""
	}
	return string(username)
}

// DeleteCredentials clears the persisted username and refresh token AND the
// cached access token. The original client left the in-memory token alive
// after logout; here logging out fully forgets the account.
func (s *Service) DeleteCredentials(ctx context.Context) error {
	if err := s.credsRepo().Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = ""
	s.accessTokenExpiry = time.Time{}
	s.mu.Unlock()

	return nil
}

func (s *Service) setAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
	s.accessTokenExpiry = s.now().Add(common.AccessTokenTTL)
}

// AccessTokenValid reports whether an access token is cached and its 1-hour
// validity window has not elapsed.
func (s *Service) AccessTokenValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokenValidLocked()
}

func (s *Service) tokenValidLocked() bool {
	return s.accessToken != "" && s.now().Before(s.accessTokenExpiry)
}

// sealToken encrypts the refresh token for storage; the random nonce is
// prepended to the ciphertext.
func (s *Service) sealToken(token string) ([]byte, error) {
	ciphertext, nonce, err := cryptox.Seal([]byte(token), s.sealKey)
	if err != nil {
		return nil, err
	}
	return append(nonce, ciphertext...), nil
}

func (s *Service) openToken(sealed []byte) (string, error) {
	if len(sealed) < 12 {
		return "", fmt.Errorf("sealed refresh token too short")
	}
	plaintext, err := cryptox.Open(sealed[12:], sealed[:12], s.sealKey)
	if err != nil {
		return "", fmt.Errorf("failed to unseal refresh token: %w", err)
	}
	return string(plaintext), nil
}
