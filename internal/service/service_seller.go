package service

import (
	"context"
	"fmt"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/models"
)

// sellerService resolves seller accounts from authenticated actor ids.
// Every vendor route runs through this resolution once, in the seller
// middleware, before any business logic executes.
type sellerService struct {
	sellerRepository store.SellerRepository

	logger *logger.Logger
}

// NewSellerService constructs a SellerService backed by the given repository.
func NewSellerService(sellerRepository store.SellerRepository, logger *logger.Logger) SellerService {
	return &sellerService{
		sellerRepository: sellerRepository,
		logger:           logger,
	}
}

// ResolveByActorID returns the seller whose member id equals the actor id
// from the token subject.
//
// Returns:
//   - ErrInvalidDataProvided if actorID is empty.
//   - A wrapped storage error if no seller is associated with the actor
//     (see store.ErrSellerNotFound).
func (s *sellerService) ResolveByActorID(ctx context.Context, actorID string) (models.Seller, error) {
	log := logger.FromContext(ctx)

	if actorID == "" {
		log.Error().Msg("empty actor id provided")
		return models.Seller{}, ErrInvalidDataProvided
	}

	seller, err := s.sellerRepository.FindByMemberID(ctx, actorID)
	if err != nil {
		log.Err(err).Str("actor_id", actorID).Msg("seller search by actor id failed")
		return models.Seller{}, fmt.Errorf("seller search by actor id failed: %w", err)
	}

	return seller, nil
}
