package form

import (
	"strconv"

	"content-admin-api/internal/domain"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Field names used by the admin editors. Setters address draft fields by these
// names; unknown names are rejected.
const (
	FieldName            = "name"
	FieldSlug            = "slug"
	FieldTagline         = "tagline"
	FieldHeading         = "heading"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
	FieldThumbnailImage  = "thumbnail_image"
	FieldOGImage         = "og_image"
	FieldCategoryID      = "category_id"
	FieldParagraphs      = "paragraphs"
	FieldHeroParagraphs  = "hero_paragraphs"
	FieldRegions         = "regions"
	FieldRelatedProjects = "related_projects"
	FieldIsActive        = "is_active"
	FieldShowOnHomepage  = "show_on_homepage"
	FieldIsFeatured      = "is_featured"
)

// CategoryDraft is the in-memory editable copy of a category record. It is
// normalized at construction time: text lists are floored to a single empty
// entry so the section editors always have one row to type into.
type CategoryDraft struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Tagline         string   `json:"tagline"`
	Heading         string   `json:"heading"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	ThumbnailImage  string   `json:"thumbnail_image"`
	OGImage         string   `json:"og_image"`
	IsActive        bool     `json:"is_active"`
	ShowOnHomepage  bool     `json:"show_on_homepage"`
	Paragraphs      []string `json:"paragraphs"`
	Regions         []string `json:"regions"`
}

// NewCategoryDraft seeds a draft from a fetched record.
func NewCategoryDraft(rec *domain.Category) *CategoryDraft {
	return &CategoryDraft{
		Name:            rec.Name,
		Slug:            rec.Slug,
		Tagline:         rec.Tagline,
		Heading:         rec.Heading,
		MetaTitle:       rec.MetaTitle,
		MetaDescription: rec.MetaDescription,
		ThumbnailImage:  rec.ThumbnailImage,
		OGImage:         rec.OGImage,
		IsActive:        rec.IsActive,
		ShowOnHomepage:  rec.ShowOnHomepage,
		Paragraphs:      floorList(rec.Paragraphs),
		Regions:         floorList(rec.Regions),
	}
}

// floorList guarantees at least one (possibly empty) entry.
func floorList(list []string) []string {
	if len(list) == 0 {
		return []string{""}
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

func (d *CategoryDraft) textField(name string) (*string, bool) {
	switch name {
	case FieldName:
		return &d.Name, true
	case FieldSlug:
		return &d.Slug, true
	case FieldTagline:
		return &d.Tagline, true
	case FieldHeading:
		return &d.Heading, true
	case FieldMetaTitle:
		return &d.MetaTitle, true
	case FieldMetaDescription:
		return &d.MetaDescription, true
	case FieldThumbnailImage:
		return &d.ThumbnailImage, true
	case FieldOGImage:
		return &d.OGImage, true
	}
	return nil, false
}

func (d *CategoryDraft) boolField(name string) (*bool, bool) {
	switch name {
	case FieldIsActive:
		return &d.IsActive, true
	case FieldShowOnHomepage:
		return &d.ShowOnHomepage, true
	}
	return nil, false
}

func (d *CategoryDraft) listField(name string) (*[]string, bool) {
	switch name {
	case FieldParagraphs:
		return &d.Paragraphs, true
	case FieldRegions:
		return &d.Regions, true
	}
	return nil, false
}

// CategoryPayload is the cleaned submission shape handed to the update
// collaborator: blank list entries stripped, og_image defaulted to the
// thumbnail when unset.
type CategoryPayload struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Tagline         string   `json:"tagline"`
	Heading         string   `json:"heading"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	ThumbnailImage  string   `json:"thumbnail_image"`
	OGImage         string   `json:"og_image"`
	IsActive        bool     `json:"is_active"`
	ShowOnHomepage  bool     `json:"show_on_homepage"`
	Paragraphs      []string `json:"paragraphs"`
	Regions         []string `json:"regions"`
}

func (d *CategoryDraft) payload() CategoryPayload {
	og := d.OGImage
	if og == "" {
		og = d.ThumbnailImage
	}
	return CategoryPayload{
		Name:            d.Name,
		Slug:            d.Slug,
		Tagline:         d.Tagline,
		Heading:         d.Heading,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		ThumbnailImage:  d.ThumbnailImage,
		OGImage:         og,
		IsActive:        d.IsActive,
		ShowOnHomepage:  d.ShowOnHomepage,
		Paragraphs:      CleanText(d.Paragraphs),
		Regions:         CleanText(d.Regions),
	}
}

// ProjectDraft is the in-memory editable copy of a project record. The
// category selection is held in its string form until submit time, matching
// the select element it is bound to; submit coerces it to an integer.
type ProjectDraft struct {
	CategorySelection string   `json:"category_id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Tagline           string   `json:"tagline"`
	Heading           string   `json:"heading"`
	MetaTitle         string   `json:"meta_title"`
	MetaDescription   string   `json:"meta_description"`
	ThumbnailImage    string   `json:"thumbnail_image"`
	OGImage           string   `json:"og_image"`
	IsFeatured        bool     `json:"is_featured"`
	IsActive          bool     `json:"is_active"`
	HeroParagraphs    []string `json:"hero_paragraphs"`
	Regions           []string `json:"regions"`
	RelatedProjects   []int64  `json:"related_projects"`
}

// NewProjectDraft seeds a draft from a fetched record.
func NewProjectDraft(rec *domain.Project) *ProjectDraft {
	selection := ""
	if rec.CategoryID != 0 {
		selection = formatID(rec.CategoryID)
	}
	related := make([]int64, len(rec.RelatedProjects))
	copy(related, rec.RelatedProjects)
	return &ProjectDraft{
		CategorySelection: selection,
		Name:              rec.Name,
		Slug:              rec.Slug,
		Tagline:           rec.Tagline,
		Heading:           rec.Heading,
		MetaTitle:         rec.MetaTitle,
		MetaDescription:   rec.MetaDescription,
		ThumbnailImage:    rec.ThumbnailImage,
		OGImage:           rec.OGImage,
		IsFeatured:        rec.IsFeatured,
		IsActive:          rec.IsActive,
		HeroParagraphs:    floorList(rec.HeroParagraphs),
		Regions:           floorList(rec.Regions),
		RelatedProjects:   related,
	}
}

func (d *ProjectDraft) textField(name string) (*string, bool) {
	switch name {
	case FieldCategoryID:
		return &d.CategorySelection, true
	case FieldName:
		return &d.Name, true
	case FieldSlug:
		return &d.Slug, true
	case FieldTagline:
		return &d.Tagline, true
	case FieldHeading:
		return &d.Heading, true
	case FieldMetaTitle:
		return &d.MetaTitle, true
	case FieldMetaDescription:
		return &d.MetaDescription, true
	case FieldThumbnailImage:
		return &d.ThumbnailImage, true
	case FieldOGImage:
		return &d.OGImage, true
	}
	return nil, false
}

func (d *ProjectDraft) boolField(name string) (*bool, bool) {
	switch name {
	case FieldIsFeatured:
		return &d.IsFeatured, true
	case FieldIsActive:
		return &d.IsActive, true
	}
	return nil, false
}

func (d *ProjectDraft) listField(name string) (*[]string, bool) {
	switch name {
	case FieldHeroParagraphs:
		return &d.HeroParagraphs, true
	case FieldRegions:
		return &d.Regions, true
	}
	return nil, false
}

// ProjectPayload is the cleaned submission shape for a project, with the
// category selection coerced to its numeric id.
type ProjectPayload struct {
	CategoryID      int      `json:"category_id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Tagline         string   `json:"tagline"`
	Heading         string   `json:"heading"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	ThumbnailImage  string   `json:"thumbnail_image"`
	OGImage         string   `json:"og_image"`
	IsFeatured      bool     `json:"is_featured"`
	IsActive        bool     `json:"is_active"`
	HeroParagraphs  []string `json:"hero_paragraphs"`
	Regions         []string `json:"regions"`
	RelatedProjects []int64  `json:"related_projects"`
}

func (d *ProjectDraft) payload(categoryID int) ProjectPayload {
	og := d.OGImage
	if og == "" {
		og = d.ThumbnailImage
	}
	related := make([]int64, len(d.RelatedProjects))
	copy(related, d.RelatedProjects)
	return ProjectPayload{
		CategoryID:      categoryID,
		Name:            d.Name,
		Slug:            d.Slug,
		Tagline:         d.Tagline,
		Heading:         d.Heading,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		ThumbnailImage:  d.ThumbnailImage,
		OGImage:         og,
		IsFeatured:      d.IsFeatured,
		IsActive:        d.IsActive,
		HeroParagraphs:  CleanText(d.HeroParagraphs),
		Regions:         CleanText(d.Regions),
		RelatedProjects: related,
	}
}
