package model

import (
	"time"

	"github.com/google/uuid"
)

// ArtworkModel mirrors the 'artworks' table. OwnerID references users.id.
type ArtworkModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TypeID        *uuid.UUID `gorm:"type:uuid;index"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Artist        string     `gorm:"type:varchar(255)"`
	Year          int
	Description   string  `gorm:"type:text"`
	Location      string  `gorm:"type:varchar(255)"`
	PurchasePrice float64 `gorm:"type:numeric(12,2)"`
	ImageURL      string  `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtworkModel) TableName() string {
	return "artworks"
}

// ArtworkTypeModel mirrors the 'artwork_types' table. Name is unique per
// owner via a composite constraint.
type ArtworkTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_artwork_types_owner_name"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_artwork_types_owner_name"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArtworkTypeModel) TableName() string {
	return "artwork_types"
}
