package restaurant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameTooShort    = errors.New("restaurant name must be at least 3 characters")
	ErrNameTooLong     = errors.New("restaurant name is too long (max 255 characters)")
	ErrAddressTooShort = errors.New("restaurant address must be at least 3 characters")
	ErrEmptyCuisine    = errors.New("cuisine type cannot be empty")
)

const (
	MinNameLength    = 3
	MaxNameLength    = 255
	MinAddressLength = 3
)

type Restaurant struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	address     string
	cuisineType string
	schedule    Schedule
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRestaurant(id, ownerID uuid.UUID, name, address, cuisineType string, schedule Schedule) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	address = strings.TrimSpace(address)
	if len(address) < MinAddressLength {
		return nil, ErrAddressTooShort
	}

	cuisineType = strings.TrimSpace(cuisineType)
	if cuisineType == "" {
		return nil, ErrEmptyCuisine
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Restaurant{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		address:     address,
		cuisineType: cuisineType,
		schedule:    schedule,
	}, nil
}

func validateName(name string) error {
	if len(name) < MinNameLength {
		return ErrNameTooShort
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) CuisineType() string  { return r.cuisineType }
func (r *Restaurant) Schedule() Schedule   { return r.schedule }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }
