package booking

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

const commissionRate = 0.10

// Request carries the optional booking parameters. Zero values fall back to
// the provider's minimum price and placeholder date/type labels.
type Request struct {
	EventDate string  `json:"event_date"`
	EventType string  `json:"event_type"`
	Price     float64 `json:"price"`
}

// Service computes bookings against the provider catalog.
type Service struct {
	catalog storage.CatalogRepository
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new booking service.
func NewService(catalog storage.CatalogRepository, opts ...Option) (*Service, error) {
	if catalog == nil {
		return nil, ErrCatalogRequired
	}

	s := &Service{
		catalog: catalog,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Book computes the acknowledgment for booking the given provider.
// Returns storage.ErrNotFound when the provider does not exist; this is the
// only booking failure surfaced to callers.
func (s *Service) Book(ctx context.Context, providerID core.ID, req Request) (*core.Booking, error) {
	provider, err := s.catalog.Get(ctx, providerID)
	if err != nil {
		return nil, err
	}

	price := req.Price
	if price == 0 {
		price = float64(provider.PriceMin)
	}
	commission := round2(price * commissionRate)
	payout := round2(price - commission)

	eventDate := req.EventDate
	if eventDate == "" {
		eventDate = "TBD"
	}
	eventType := req.EventType
	if eventType == "" {
		eventType = "Event"
	}

	booking := &core.Booking{
		BookingID:          Reference(providerID, req.EventDate),
		ProviderName:       provider.Name,
		EventDate:          eventDate,
		EventType:          eventType,
		AgreedPrice:        price,
		PlatformCommission: commission,
		ProviderPayout:     payout,
		Status:             "confirmed",
	}

	s.logger.Info("booking confirmed",
		"booking_id", booking.BookingID,
		"provider", provider.Name,
		"price", price)

	return booking, nil
}

// Reference derives the booking reference from the provider ID and the raw
// event date. The same provider and date always produce the same reference.
func Reference(providerID core.ID, eventDate string) string {
	if eventDate == "" {
		eventDate = "X"
	}
	return fmt.Sprintf("TB-%d-%04d", providerID, uint64(core.IDFromContent(eventDate))%10000)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
