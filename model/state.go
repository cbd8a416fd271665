package model

import "fmt"

// DevelopmentThreshold is the level IP, ProductMarketFit and their product
// must exceed to count as "enough".
const DevelopmentThreshold = 0.75

// =============================================================================
// STATE - Balance sheet and maturity of one company
// =============================================================================

// StateConfig is the starting position of a company.
type StateConfig struct {
	Capital          float64 // startup capital injection
	Channel          float64 // initial channel strength, fraction of market
	ProductMarketFit float64 // initial product/market fit, fraction
}

// DefaultStateConfig returns the baseline starting position.
func DefaultStateConfig() StateConfig {
	return StateConfig{
		Capital:          150000,
		Channel:          0,
		ProductMarketFit: 0.5,
	}
}

// State is a plain record plus read-only queries. The capped accumulators
// are only written by Company.AdvanceOneMonth, which owns the clamping.
type State struct {
	Age              int
	InitialCapital   float64
	Cash             float64
	IP               float64
	ProductMarketFit float64
	ChannelStrength  float64

	// Insertion-only. Exhausted sales are kept.
	subscribers []*Sale
}

func NewState(cfg StateConfig) *State {
	return &State{
		InitialCapital:   cfg.Capital,
		Cash:             cfg.Capital,
		ChannelStrength:  cfg.Channel,
		ProductMarketFit: cfg.ProductMarketFit,
	}
}

// DevelopmentEffect is IP x ProductMarketFit once that product clears the
// threshold, otherwise 0.
func (s *State) DevelopmentEffect() float64 {
	overall := s.IP * s.ProductMarketFit
	if overall > DevelopmentThreshold {
		return overall
	}
	return 0
}

func (s *State) IPEnough() bool  { return s.IP > DevelopmentThreshold }
func (s *State) PMFEnough() bool { return s.ProductMarketFit > DevelopmentThreshold }

// Pipeline sums the remaining revenue of every subscriber, exhausted ones
// included.
func (s *State) Pipeline() float64 {
	total := 0.0
	for _, sale := range s.subscribers {
		total += sale.RemainingRevenue()
	}
	return total
}

// AddSubscriber appends a sale to the subscriber book.
func (s *State) AddSubscriber(sale *Sale) {
	s.subscribers = append(s.subscribers, sale)
}

// Subscribers returns a copy of the subscriber book in insertion order.
func (s *State) Subscribers() []*Sale {
	out := make([]*Sale, len(s.subscribers))
	copy(out, s.subscribers)
	return out
}

// SubscriberCount counts every sale ever made.
func (s *State) SubscriberCount() int { return len(s.subscribers) }

// ActiveSubscriberCount counts sales whose countdown has not gone negative.
func (s *State) ActiveSubscriberCount() int {
	n := 0
	for _, sale := range s.subscribers {
		if sale.RemainingMonths() >= 0 {
			n++
		}
	}
	return n
}

func (s *State) String() string {
	return fmt.Sprintf("age=%d cash=%d pipeline=%f ip=%f pmf=%f channel=%f subscribers=%d",
		s.Age, int(s.Cash), s.Pipeline(), s.IP, s.ProductMarketFit, s.ChannelStrength, len(s.subscribers))
}
