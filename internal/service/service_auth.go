package service

import (
	"context"
	"fmt"
	"time"

	"github.com/marketcore/vendor-shipping/internal/config"
	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It exchanges seller API credentials for vendor JWT tokens and verifies
// tokens presented on authenticated routes.
type authService struct {
	// sellerRepository is the data-access layer used to look up seller
	// accounts during token exchange.
	sellerRepository store.SellerRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// SellerRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(sellerRepository store.SellerRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		sellerRepository: sellerRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// IssueToken authenticates a seller by email and API key and issues a signed
// JWT whose subject is the seller's member id.
//
// Returns:
//   - ErrInvalidDataProvided if Email or APIKey is empty.
//   - A wrapped storage error if the lookup fails (e.g. no account — see
//     store.ErrSellerNotFound).
//   - ErrWrongAPIKey if the key does not match the stored bcrypt hash.
func (a *authService) IssueToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.APIKey == "" {
		log.Error().Str("email", req.Email).Msg("invalid credentials provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	seller, err := a.sellerRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("seller search by email failed")
		return models.Token{}, fmt.Errorf("seller search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.APIKeyHash), []byte(req.APIKey)); err != nil {
		log.Error().Str("seller_id", seller.ID).Msg("api key mismatch")
		return models.Token{}, ErrWrongAPIKey
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, seller.MemberID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
