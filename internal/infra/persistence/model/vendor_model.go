package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
// Placement is flattened into nullable columns; which ones are populated
// depends on the vendor type.
type VendorModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName        string    `gorm:"type:varchar(255);not null;index"`
	BusinessDescription string    `gorm:"type:text"`
	VendorType          string    `gorm:"type:varchar(30);not null;index"`

	LocationID  *uuid.UUID `gorm:"type:uuid;index"`
	ShopNumber  string     `gorm:"type:varchar(50)"`
	ShopFloor   string     `gorm:"type:varchar(50)"`
	ShopBlock   string     `gorm:"type:varchar(50)"`
	HomeAddress string     `gorm:"type:text"`
	HomeState   string     `gorm:"type:varchar(100);index"`
	HomeLga     string     `gorm:"type:varchar(100)"`
	HomeArea    string     `gorm:"type:varchar(100)"`
	Latitude    *float64   `gorm:"type:decimal(10,8)"`
	Longitude   *float64   `gorm:"type:decimal(11,8)"`

	BusinessPhone   string `gorm:"type:varchar(50)"`
	BusinessEmail   string `gorm:"type:varchar(255)"`
	Logo            string `gorm:"type:text"`
	Documents       datatypes.JSONSlice[string]
	Images          datatypes.JSONSlice[string]
	Categories      datatypes.JSONSlice[string]
	WhatsappNumber  string `gorm:"type:varchar(50)"`
	InstagramHandle string `gorm:"type:varchar(100)"`
	FacebookPage    string `gorm:"type:varchar(255)"`
	IsOpen          bool   `gorm:"not null;default:true"`
	OpeningHours    string `gorm:"type:varchar(255)"`

	Status          string `gorm:"type:varchar(20);not null;default:'pending';index"`
	VerifiedAt      *time.Time
	VerifiedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string     `gorm:"type:text"`

	TotalGoods   int64   `gorm:"not null;default:0"`
	Rating       float64 `gorm:"not null;default:0"`
	TotalReviews int64   `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
