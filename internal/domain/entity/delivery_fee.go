package entity

import (
	"time"

	"bakehouse/internal/domain/normalize"

	"github.com/google/uuid"
)

// DeliveryFee is the fee schedule for a delivery area. Zone is optional and
// an empty zone normalizes to the empty key, so (location, "") is itself a
// valid unique pair.
type DeliveryFee struct {
	ID                    uuid.UUID
	Location              string  // Delivery area name, required.
	Zone                  string  // Optional sub-zone within the location.
	MinOrderAmount        float64 // Minimum order value for delivery, AED.
	DeliveryCharge        float64 // Charge applied below the free threshold, AED.
	AmountForFreeDelivery float64 // Order value at which delivery is free, AED.

	// Derived normalized keys, recomputed whenever the source fields change.
	NormalizedLocation string
	NormalizedZone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Normalize recomputes the derived keys from the current source fields.
// Must be called before any persistence write.
func (f *DeliveryFee) Normalize() {
	f.NormalizedLocation = normalize.Key(f.Location)
	f.NormalizedZone = normalize.Key(f.Zone)
}
