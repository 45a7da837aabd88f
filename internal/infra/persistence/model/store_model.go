package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
// The composite unique index on the normalized name/address pair closes the
// check-then-insert race: concurrent writers both passing the application
// pre-check still serialize on the index, and the loser gets a constraint
// violation translated to a duplicate error.
type StoreModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Address            string    `gorm:"type:text;not null"`
	Latitude           float64   `gorm:"type:decimal(10,8);not null"`
	Longitude          float64   `gorm:"type:decimal(11,8);not null"`
	ContactNumber      string    `gorm:"type:varchar(32)"`
	Supervisor         string    `gorm:"type:varchar(255)"`
	Hours              string    `gorm:"type:varchar(64)"`
	Status             string    `gorm:"type:varchar(32)"`
	Category           string    `gorm:"type:varchar(64)"`
	PinLocation        string    `gorm:"type:text"`
	NormalizedName     string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_stores_normalized_identity"`
	NormalizedAddress  string    `gorm:"type:text;not null;uniqueIndex:uniq_stores_normalized_identity"`
	NormalizedCategory string    `gorm:"type:varchar(64);index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
