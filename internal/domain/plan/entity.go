package plan

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTier      = errors.New("invalid plan tier")
	ErrNegativePrice    = errors.New("plan price cannot be negative")
	ErrEmptyDescription = errors.New("plan description cannot be empty")
)

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

func (t Tier) String() string {
	return string(t)
}

func (t Tier) IsValid() bool {
	return t == TierFree || t == TierPremium
}

func NewTier(s string) (Tier, error) {
	tier := Tier(s)
	if !tier.IsValid() {
		return "", ErrInvalidTier
	}
	return tier, nil
}

// Plan is a subscription level for restaurant owners.
type Plan struct {
	id          uuid.UUID
	tier        Tier
	priceCents  int64
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPlan(id uuid.UUID, tierValue string, priceCents int64, description string) (*Plan, error) {
	tier, err := NewTier(tierValue)
	if err != nil {
		return nil, err
	}

	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Plan{
		id:          id,
		tier:        tier,
		priceCents:  priceCents,
		description: description,
	}, nil
}

func (p *Plan) IsFree() bool {
	return p.tier == TierFree
}

func (p *Plan) ID() uuid.UUID        { return p.id }
func (p *Plan) Tier() Tier           { return p.tier }
func (p *Plan) PriceCents() int64    { return p.priceCents }
func (p *Plan) Description() string  { return p.description }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }
