package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GoodsModel is the GORM-specific struct for the 'goods' table.
type GoodsModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title          string    `gorm:"type:varchar(255);not null;index"`
	Description    string    `gorm:"type:text"`
	Price          float64   `gorm:"type:decimal(14,2);not null"`
	Type           string    `gorm:"type:varchar(20);not null;index"`
	Category       string    `gorm:"type:varchar(100);index"`
	Images         datatypes.JSONSlice[string]
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	VendorID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null;index"`
	Specifications datatypes.JSONMap
	Views          int64  `gorm:"not null;default:0"`
	FlagReason     string `gorm:"type:text"`
	FlaggedBy      *uuid.UUID `gorm:"type:uuid"`
	FlaggedAt      *time.Time
	ApprovedAt     *time.Time
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	IsAvailable    bool       `gorm:"not null;default:true;index"`
	Condition      string     `gorm:"type:varchar(50)"`
	Brand          string     `gorm:"type:varchar(100)"`
	Tags           datatypes.JSONSlice[string]
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoodsModel) TableName() string {
	return "goods"
}
