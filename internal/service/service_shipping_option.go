package service

import (
	"context"
	"fmt"
	"time"

	"github.com/marketcore/vendor-shipping/internal/logger"
	"github.com/marketcore/vendor-shipping/internal/store"
	"github.com/marketcore/vendor-shipping/internal/utils"
	"github.com/marketcore/vendor-shipping/models"
)

// shippingOptionService is the concrete implementation of
// ShippingOptionService. It coordinates the option repository, the zone
// lookups, and the ownership link checks.
type shippingOptionService struct {
	optionRepository store.ShippingOptionRepository
	zoneRepository   store.ServiceZoneRepository
	linkRepository   store.LinkRepository

	ids *utils.IDGenerator

	logger *logger.Logger
}

// NewShippingOptionService constructs a ShippingOptionService wired to the
// given repositories.
func NewShippingOptionService(
	optionRepository store.ShippingOptionRepository,
	zoneRepository store.ServiceZoneRepository,
	linkRepository store.LinkRepository,
	logger *logger.Logger,
) ShippingOptionService {
	return &shippingOptionService{
		optionRepository: optionRepository,
		zoneRepository:   zoneRepository,
		linkRepository:   linkRepository,
		ids:              utils.NewIDGenerator(),
		logger:           logger,
	}
}

// Create validates the request, verifies the target zone exists, and writes
// the option together with its seller ownership link in one transaction.
// price_type is always "flat" and service_zone_id always equals the given
// zone id, regardless of body content.
//
// The returned option is re-read from storage after the commit; a failed
// read-back at that point indicates storage corruption and is surfaced as a
// wrapped repository error rather than a not-found.
func (s *shippingOptionService) Create(ctx context.Context, seller models.Seller, serviceZoneID string, req models.CreateShippingOptionRequest) (models.ShippingOption, error) {
	log := logger.FromContext(ctx)

	if err := validateCreateShippingOptionRequest(req); err != nil {
		log.Error().Err(err).Msg("invalid shipping option payload")
		return models.ShippingOption{}, err
	}

	if _, err := s.zoneRepository.FindByID(ctx, serviceZoneID); err != nil {
		log.Err(err).Str("service_zone_id", serviceZoneID).Msg("service zone lookup failed")
		return models.ShippingOption{}, fmt.Errorf("service zone lookup failed: %w", err)
	}

	now := time.Now()
	option := models.ShippingOption{
		ID:            s.ids.Generate(utils.ShippingOptionIDPrefix),
		Name:          req.Name,
		PriceType:     models.PriceTypeFlat,
		Amount:        *req.Amount,
		CurrencyCode:  req.CurrencyCode,
		ServiceZoneID: serviceZoneID,
		Data:          req.Data,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.optionRepository.CreateWithLink(ctx, option, seller.ID); err != nil {
		log.Err(err).Str("seller_id", seller.ID).Msg("shipping option creation failed")
		return models.ShippingOption{}, fmt.Errorf("shipping option creation failed: %w", err)
	}

	created, err := s.optionRepository.FindByID(ctx, option.ID)
	if err != nil {
		// the transaction committed, so the row must exist
		log.Err(err).Str("shipping_option_id", option.ID).Msg("read-back of committed option failed")
		return models.ShippingOption{}, fmt.Errorf("read-back of committed option failed: %w", err)
	}

	return created, nil
}

// List returns one page of the zone's options plus the total count. The zone
// is verified first so an unknown zone id is reported instead of an empty
// page.
func (s *shippingOptionService) List(ctx context.Context, filter models.ListShippingOptionsFilter) ([]models.ShippingOption, int64, error) {
	log := logger.FromContext(ctx)

	if _, err := s.zoneRepository.FindByID(ctx, filter.ServiceZoneID); err != nil {
		log.Err(err).Str("service_zone_id", filter.ServiceZoneID).Msg("service zone lookup failed")
		return nil, 0, fmt.Errorf("service zone lookup failed: %w", err)
	}

	options, count, err := s.optionRepository.List(ctx, filter)
	if err != nil {
		log.Err(err).Str("service_zone_id", filter.ServiceZoneID).Msg("shipping option listing failed")
		return nil, 0, fmt.Errorf("shipping option listing failed: %w", err)
	}

	return options, count, nil
}

// Get returns the option with the given id after verifying the seller owns it.
func (s *shippingOptionService) Get(ctx context.Context, seller models.Seller, id string) (models.ShippingOption, error) {
	option, err := s.optionRepository.FindByID(ctx, id)
	if err != nil {
		return models.ShippingOption{}, fmt.Errorf("shipping option lookup failed: %w", err)
	}

	if err := s.checkOwnership(ctx, seller, id); err != nil {
		return models.ShippingOption{}, err
	}

	return option, nil
}

// Update applies the non-nil fields of req to an option owned by the seller
// and returns the updated record.
func (s *shippingOptionService) Update(ctx context.Context, seller models.Seller, id string, req models.UpdateShippingOptionRequest) (models.ShippingOption, error) {
	log := logger.FromContext(ctx)

	if req.Amount != nil && *req.Amount < 0 {
		return models.ShippingOption{}, ErrValidationAmountNegative
	}
	if req.Name != nil && *req.Name == "" {
		return models.ShippingOption{}, ErrValidationNameRequired
	}

	if err := s.checkOwnership(ctx, seller, id); err != nil {
		return models.ShippingOption{}, err
	}

	if err := s.optionRepository.Update(ctx, id, req, time.Now()); err != nil {
		log.Err(err).Str("shipping_option_id", id).Msg("shipping option update failed")
		return models.ShippingOption{}, fmt.Errorf("shipping option update failed: %w", err)
	}

	updated, err := s.optionRepository.FindByID(ctx, id)
	if err != nil {
		return models.ShippingOption{}, fmt.Errorf("read-back of updated option failed: %w", err)
	}

	return updated, nil
}

// Delete removes an option owned by the seller together with its link record.
func (s *shippingOptionService) Delete(ctx context.Context, seller models.Seller, id string) error {
	log := logger.FromContext(ctx)

	if err := s.checkOwnership(ctx, seller, id); err != nil {
		return err
	}

	if err := s.optionRepository.DeleteWithLink(ctx, id); err != nil {
		log.Err(err).Str("shipping_option_id", id).Msg("shipping option deletion failed")
		return fmt.Errorf("shipping option deletion failed: %w", err)
	}

	return nil
}

// checkOwnership verifies the option's link record points at the seller.
// An option with no link record at all is reported as not found: unlinked
// rows can only come from legacy writers and are invisible to the vendor API.
func (s *shippingOptionService) checkOwnership(ctx context.Context, seller models.Seller, shippingOptionID string) error {
	log := logger.FromContext(ctx)

	ownerID, err := s.linkRepository.OwnerOf(ctx, shippingOptionID)
	if err != nil {
		log.Err(err).Str("shipping_option_id", shippingOptionID).Msg("ownership lookup failed")
		return fmt.Errorf("ownership lookup failed: %w", err)
	}

	if ownerID != seller.ID {
		log.Error().
			Str("shipping_option_id", shippingOptionID).
			Str("seller_id", seller.ID).
			Str("owner_id", ownerID).
			Msg("seller does not own shipping option")
		return ErrNotOptionOwner
	}

	return nil
}
