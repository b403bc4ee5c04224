package domain

import (
	"gorm.io/datatypes"
)

// Category represents a service category shown on the marketing site.
// Paragraphs and Regions are ordered lists edited section by section in the
// admin; they are stored as JSONB and are never empty for an editable record.
type Category struct {
	BaseModel
	Name            string                       `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string                       `gorm:"type:varchar(255);not null;uniqueIndex:uq_categories_slug" json:"slug"`
	Tagline         string                       `gorm:"type:varchar(255)" json:"tagline"`
	Heading         string                       `gorm:"type:varchar(255)" json:"heading"`
	Paragraphs      datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"paragraphs"`
	Regions         datatypes.JSONSlice[string]  `gorm:"type:jsonb" json:"regions"`
	ThumbnailImage  string                       `gorm:"type:text" json:"thumbnail_image"`
	OGImage         string                       `gorm:"type:text" json:"og_image"`
	MetaTitle       string                       `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string                       `gorm:"type:text" json:"meta_description"`
	IsActive        bool                         `gorm:"default:true" json:"is_active"`
	ShowOnHomepage  bool                         `gorm:"default:true;index:idx_categories_homepage" json:"show_on_homepage"`
	Projects        []Project                    `gorm:"foreignKey:CategoryID" json:"projects,omitempty"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
