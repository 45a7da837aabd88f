package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryFeeModel is the GORM-specific struct for the 'delivery_fees' table.
// Zone is optional; the empty string participates in the unique pair so a
// location without zones is still unique.
type DeliveryFeeModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Location              string    `gorm:"type:varchar(255);not null"`
	Zone                  string    `gorm:"type:varchar(255);not null;default:''"`
	MinOrderAmount        float64   `gorm:"type:decimal(10,2);not null"`
	DeliveryCharge        float64   `gorm:"type:decimal(10,2);not null"`
	AmountForFreeDelivery float64   `gorm:"type:decimal(10,2);not null"`
	NormalizedLocation    string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_delivery_fees_normalized_identity"`
	NormalizedZone        string    `gorm:"type:varchar(255);not null;default:'';uniqueIndex:uniq_delivery_fees_normalized_identity"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryFeeModel) TableName() string {
	return "delivery_fees"
}
