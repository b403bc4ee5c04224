package dto

import (
	"time"

	"content-admin-api/internal/form"
)

// SetFieldRequest addresses one draft field by name. Exactly one of value or
// enabled must be provided: text fields take value, toggle fields take enabled.
type SetFieldRequest struct {
	Field   string  `json:"field" binding:"required" example:"name"`
	Value   *string `json:"value,omitempty" example:"Cloud Infrastructure"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// ListOpRequest applies one edit to a list field of the draft
type ListOpRequest struct {
	Field string  `json:"field" binding:"required" example:"paragraphs"`
	Op    string  `json:"op" binding:"required,oneof=append update remove" example:"append"`
	Index *int    `json:"index,omitempty"`
	Value *string `json:"value,omitempty"`
}

// RelatedOpRequest adds or removes a related project reference
type RelatedOpRequest struct {
	Op        string `json:"op" binding:"required,oneof=add remove" example:"add"`
	ProjectID *int64 `json:"projectId,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

// GoToStepRequest jumps the wizard to a specific step
type GoToStepRequest struct {
	Step int `json:"step" binding:"required,min=1,max=5" example:"3"`
}

// NoticeView is the transient banner as seen by the admin UI
type NoticeView struct {
	Kind      string    `json:"kind" example:"success"`
	Message   string    `json:"message" example:"Category saved"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// WizardView describes the wizard position for project sessions
type WizardView struct {
	CurrentStep    int   `json:"currentStep" example:"2"`
	CompletedSteps []int `json:"completedSteps"`
}

// SessionResponse is the full view of one edit session returned after every
// session operation, so the UI can render from a single payload
type SessionResponse struct {
	SessionID  string           `json:"sessionId" example:"0b19a986-7d62-44dd-a936-3a1a6a02c061"`
	EntityType string           `json:"entityType" example:"category"`
	RecordID   uint             `json:"recordId" example:"12"`
	State      string           `json:"state" example:"READY"`
	LoadError  string           `json:"loadError,omitempty"`
	Draft      interface{}      `json:"draft,omitempty"`
	Notice     *NoticeView      `json:"notice,omitempty"`
	Upload     form.UploadState `json:"upload"`
	Wizard     *WizardView      `json:"wizard,omitempty"`
	RedirectTo string           `json:"redirectTo,omitempty"`
	RedirectIn int64            `json:"redirectInMs,omitempty"`
	ExpiresAt  time.Time        `json:"expiresAt"`
}

// ToNoticeView converts an active banner, or returns nil when none is showing
func ToNoticeView(n *form.Notice) *NoticeView {
	if n == nil {
		return nil
	}
	return &NoticeView{
		Kind:      n.Kind.String(),
		Message:   n.Message,
		ExpiresAt: n.ExpiresAt,
	}
}
