// Package form implements the admin record-editing core: a draft of a
// Category or Project record seeded from a fetched entity, mutated field by
// field, and submitted as one unit. The package owns the array-field
// primitives, the image upload guards and the project step wizard; persistence
// and object storage are collaborators injected through small interfaces.
package form

import (
	"time"
)

// Banner and redirect timings are fixed by the admin UI contract.
const (
	// BannerTTL is how long a transient success/error banner stays visible.
	BannerTTL = 3000 * time.Millisecond
	// RedirectDelay is the pause between a successful submit and the
	// scheduled redirect back to the listing page.
	RedirectDelay = 1500 * time.Millisecond
)

// NoticeKind distinguishes error banners from success banners.
type NoticeKind int

const (
	NoticeError NoticeKind = iota
	NoticeSuccess
)

func (k NoticeKind) String() string {
	if k == NoticeSuccess {
		return "success"
	}
	return "error"
}

// Notice is a transient banner with an explicit expiry instead of an ad hoc
// timer. Consumers read it through NoticeCenter.Active, which hides it once
// expired.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// NoticeCenter holds at most one active banner, matching the single banner
// slot of the admin pages. Setting a new notice replaces the previous one.
type NoticeCenter struct {
	now     func() time.Time
	current *Notice
}

// NewNoticeCenter creates a NoticeCenter. A nil clock falls back to time.Now.
func NewNoticeCenter(now func() time.Time) *NoticeCenter {
	if now == nil {
		now = time.Now
	}
	return &NoticeCenter{now: now}
}

// Error shows an error banner for the standard banner duration.
func (n *NoticeCenter) Error(message string) {
	n.set(NoticeError, message, BannerTTL)
}

// Success shows a success banner for the standard banner duration.
func (n *NoticeCenter) Success(message string) {
	n.set(NoticeSuccess, message, BannerTTL)
}

func (n *NoticeCenter) set(kind NoticeKind, message string, ttl time.Duration) {
	n.current = &Notice{
		Kind:      kind,
		Message:   message,
		ExpiresAt: n.now().Add(ttl),
	}
}

// Active returns the current banner, or nil if there is none or it expired.
func (n *NoticeCenter) Active() *Notice {
	if n.current == nil {
		return nil
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	return n.current
}

// Clear removes the current banner immediately.
func (n *NoticeCenter) Clear() {
	n.current = nil
}
