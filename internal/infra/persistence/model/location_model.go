package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
// Coordinates are stored as plain decimal columns; the PostGIS expressions
// in the repository build points from them on the fly.
type LocationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Type         string    `gorm:"type:varchar(30);not null;index"`
	State        string    `gorm:"type:varchar(100);not null;index"`
	Lga          string    `gorm:"type:varchar(100);not null"`
	Area         string    `gorm:"type:varchar(100);not null"`
	Address      string    `gorm:"type:text"`
	Description  string    `gorm:"type:text"`
	Latitude     float64   `gorm:"type:decimal(10,8);not null"`
	Longitude    float64   `gorm:"type:decimal(11,8);not null"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	Images       datatypes.JSONSlice[string]
	OpeningHours string `gorm:"type:varchar(255)"`
	ContactPhone string `gorm:"type:varchar(50)"`
	ContactEmail string `gorm:"type:varchar(255)"`
	TotalVendors int64  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
