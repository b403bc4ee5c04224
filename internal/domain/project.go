package domain

import (
	"gorm.io/datatypes"
)

// MaxRelatedProjects caps the related_projects list on a project record.
const MaxRelatedProjects = 3

// Project represents a case-study entry on the marketing site. Each project
// belongs to exactly one category. RelatedProjects holds ids of up to
// MaxRelatedProjects other projects surfaced on the detail page.
type Project struct {
	BaseModel
	CategoryID      uint                        `gorm:"not null;index:idx_projects_category_id" json:"category_id"`
	Name            string                      `gorm:"type:varchar(255);not null" json:"name"`
	Slug            string                      `gorm:"type:varchar(255);not null;uniqueIndex:uq_projects_slug" json:"slug"`
	Tagline         string                      `gorm:"type:varchar(255)" json:"tagline"`
	Heading         string                      `gorm:"type:varchar(255)" json:"heading"`
	HeroParagraphs  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"hero_paragraphs"`
	Regions         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"regions"`
	RelatedProjects datatypes.JSONSlice[int64]  `gorm:"type:jsonb" json:"related_projects"`
	ThumbnailImage  string                      `gorm:"type:text" json:"thumbnail_image"`
	OGImage         string                      `gorm:"type:text" json:"og_image"`
	MetaTitle       string                      `gorm:"type:varchar(255)" json:"meta_title"`
	MetaDescription string                      `gorm:"type:text" json:"meta_description"`
	IsFeatured      bool                        `gorm:"default:false;index:idx_projects_is_featured" json:"is_featured"`
	IsActive        bool                        `gorm:"default:true" json:"is_active"`
	Category        Category                    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
