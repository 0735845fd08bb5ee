package models

import (
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetIncubating AssetStatus = "incubating"
	AssetActive     AssetStatus = "active"
	AssetDeprecated AssetStatus = "deprecated"
)

// IndexStatus tracks the search-index lifecycle of an asset. Assets enter
// "pending" on create/update and the indexing worker moves them forward.
type IndexStatus string

const (
	IndexPending  IndexStatus = "pending"
	IndexWorking  IndexStatus = "indexing"
	IndexComplete IndexStatus = "indexed"
	IndexFailed   IndexStatus = "failed"
)

type Asset struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Slug        string      `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Summary     string      `gorm:"type:text" json:"summary"`
	Body        string      `gorm:"type:text" json:"body"`
	Status      AssetStatus `gorm:"not null;default:'incubating'" json:"status"`
	CategoryID  *uuid.UUID  `gorm:"type:uuid" json:"category_id,omitempty"`
	IndexStatus IndexStatus `gorm:"not null;default:'pending'" json:"index_status"`
	IndexError  *string     `gorm:"type:text" json:"index_error,omitempty"`
	CreatedAt   time.Time   `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags     []Tag     `gorm:"many2many:asset_tags" json:"tags"`
}

func (Asset) TableName() string {
	return "assets"
}

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Slug        string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

type Tag struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// AssetDocument is an uploaded PDF attached to an asset. ExtractedText is
// filled at upload time and folded into the asset's search embedding.
type AssetDocument struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AssetID          uuid.UUID `gorm:"type:uuid;not null;index" json:"asset_id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	FilePath         string    `gorm:"type:text" json:"file_path"`
	PageCount        int       `json:"page_count"`
	ExtractedText    string    `gorm:"type:text" json:"-"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (AssetDocument) TableName() string {
	return "asset_documents"
}
