package dealer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lazharichir/dealer/cards"
	"github.com/sanity-io/litter"
)

// Service deals a fresh deck for every call. It holds no per-deal state
// and is safe for concurrent use as long as its Shuffler is.
type Service struct {
	shuffler cards.Shuffler
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithShuffler replaces the default random shuffler.
func WithShuffler(s cards.Shuffler) Option {
	return func(svc *Service) { svc.shuffler = s }
}

// WithLogger sets the logger used for deal records.
func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.log = l }
}

// NewService creates a dealer service with a random shuffler and the default logger.
func NewService(opts ...Option) *Service {
	svc := &Service{
		shuffler: cards.RandomShuffler{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// DealRaw validates raw as a player count and deals to that many players.
func (s *Service) DealRaw(ctx context.Context, raw string) (cards.DealResult, error) {
	players, err := ParsePlayerCount(raw)
	if err != nil {
		s.log.DebugContext(ctx, "deal.rejected", "input", raw, "kind", KindOf(err))
		return nil, err
	}
	return s.Distribute(ctx, players)
}

// Distribute shuffles a new deck and deals it to players.
func (s *Service) Distribute(ctx context.Context, players int) (cards.DealResult, error) {
	dealID := uuid.NewString()

	deck := cards.ShuffleCards(s.shuffler, cards.NewDeck52())
	result, err := Deal(deck, players)
	if err != nil {
		s.log.ErrorContext(ctx, "deal.failed", "deal_id", dealID, "players", players, "kind", KindOf(err), "error", err)
		return nil, err
	}

	s.log.InfoContext(ctx, "deal.completed", "deal_id", dealID, "players", players, "cards", result.CardCount())
	if s.log.Enabled(ctx, slog.LevelDebug) {
		s.log.DebugContext(ctx, "deal.result", "deal_id", dealID, "hands", litter.Sdump(result))
	}

	return result, nil
}
