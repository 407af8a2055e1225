package services

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/ICE-TOOLS/icefit/models"
	"github.com/ICE-TOOLS/icefit/utils"
)

// AuthService issues and rotates token pairs. Refresh tokens are held in the
// redis cache for the lifetime of their TTL; rotation deletes the old token
// before the new pair is stored.
type AuthService struct {
	secret []byte
	cache  *TokenCache
	users  *UserService
	log    *zap.Logger
}

func NewAuthService(secret []byte, cache *TokenCache, users *UserService, log *zap.Logger) *AuthService {
	return &AuthService{secret: secret, cache: cache, users: users, log: log}
}

// IssueTokens creates a pair for the user and registers the refresh token.
func (s *AuthService) IssueTokens(ctx context.Context, user *models.User) (utils.TokenPair, error) {
	pair, err := utils.GenerateTokenPair(s.secret, user.ID, user.Email)
	if err != nil {
		return utils.TokenPair{}, err
	}
	if err := s.cache.SaveRefresh(ctx, user.ID, pair.RefreshToken); err != nil {
		return utils.TokenPair{}, err
	}
	return pair, nil
}

// Refresh validates a refresh token against signature, type claim and the
// cache, then rotates it for a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (utils.TokenPair, *models.User, error) {
	if _, err := utils.ParseToken(s.secret, refreshToken, utils.TokenTypeRefresh); err != nil {
		return utils.TokenPair{}, nil, utils.ErrInvalidToken
	}

	idStr, err := s.cache.CheckRefresh(ctx, refreshToken)
	if err != nil {
		return utils.TokenPair{}, nil, utils.ErrInvalidToken
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return utils.TokenPair{}, nil, utils.ErrInvalidToken
	}

	user, err := s.users.FindByID(uint(id))
	if err != nil || !user.IsActive {
		return utils.TokenPair{}, nil, utils.ErrInvalidToken
	}

	if err := s.cache.DeleteRefresh(ctx, refreshToken); err != nil {
		s.log.Warn("failed to revoke rotated refresh token", zap.Error(err))
	}

	pair, err := s.IssueTokens(ctx, user)
	if err != nil {
		return utils.TokenPair{}, nil, err
	}
	return pair, user, nil
}

// Logout revokes the refresh token immediately.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.cache.DeleteRefresh(ctx, refreshToken)
}
