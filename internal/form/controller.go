package form

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"content-admin-api/internal/domain"
)

// ErrNotFound is returned by Store collaborators when no record exists for the
// requested id. The controllers map it to a terminal not-found state instead
// of a banner.
var ErrNotFound = errors.New("record not found")

// State is the lifecycle of one form controller. Load failures are terminal
// for the controller; validation and collaborator errors during submit are
// transient and leave the controller in StateReady.
type State string

const (
	StateNew        State = "NEW"
	StateReady      State = "READY"
	StateNotFound   State = "NOT_FOUND"
	StateLoadFailed State = "LOAD_FAILED"
	StateSubmitted  State = "SUBMITTED"
)

// Scheduler defers fn by d. Production code uses time.AfterFunc; tests
// substitute a synchronous implementation.
type Scheduler func(d time.Duration, fn func())

// CategoryStore is the fetch/update collaborator for category drafts.
type CategoryStore interface {
	FetchCategory(ctx context.Context, id uint) (*CategoryDraft, error)
	UpdateCategory(ctx context.Context, id uint, p CategoryPayload) error
}

// ProjectStore is the fetch/update collaborator for project drafts.
type ProjectStore interface {
	FetchProject(ctx context.Context, id uint) (*ProjectDraft, error)
	UpdateProject(ctx context.Context, id uint, p ProjectPayload) error
}

// Options configures a form controller.
type Options struct {
	// Now is the clock for notice expiry. Defaults to time.Now.
	Now func() time.Time
	// Schedule defers the post-submit redirect. Defaults to time.AfterFunc.
	Schedule Scheduler
	// Redirect receives the redirect path once, RedirectDelay after a
	// successful submit. Optional.
	Redirect func(path string)
	Logger   *zap.Logger
}

func (o Options) normalize() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Schedule == nil {
		o.Schedule = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// controllerBase carries the state shared by both form controllers.
type controllerBase struct {
	id       uint
	state    State
	loadErr  string
	notices  *NoticeCenter
	opts     Options
	redirect string
	fired    bool
}

func newControllerBase(opts Options) controllerBase {
	opts = opts.normalize()
	return controllerBase{
		state:   StateNew,
		notices: NewNoticeCenter(opts.Now),
		opts:    opts,
	}
}

// State reports the controller lifecycle state.
func (b *controllerBase) State() State { return b.state }

// LoadError returns the terminal load error message, if any.
func (b *controllerBase) LoadError() string { return b.loadErr }

// Notices exposes the transient banner slot.
func (b *controllerBase) Notices() *NoticeCenter { return b.notices }

// ID returns the id of the loaded record.
func (b *controllerBase) ID() uint { return b.id }

// RedirectTarget returns the scheduled post-submit redirect path, or "" while
// no submit has succeeded.
func (b *controllerBase) RedirectTarget() string { return b.redirect }

// scheduleRedirect fires the redirect callback exactly once per controller,
// RedirectDelay after a successful submit.
func (b *controllerBase) scheduleRedirect(path string) {
	if b.fired {
		return
	}
	b.fired = true
	b.redirect = path
	cb := b.opts.Redirect
	b.opts.Schedule(RedirectDelay, func() {
		if cb != nil {
			cb(path)
		}
	})
}

// CategoryForm owns one category draft for the lifetime of an edit session.
// It is not safe for concurrent use; each session has a single owner.
type CategoryForm struct {
	controllerBase
	store CategoryStore
	draft *CategoryDraft
}

// NewCategoryForm creates an unloaded category form controller.
func NewCategoryForm(store CategoryStore, opts Options) *CategoryForm {
	return &CategoryForm{controllerBase: newControllerBase(opts), store: store}
}

// Load fetches the record and seeds the draft. It is one-shot: not-found and
// transport failures are terminal for this controller and no retry happens.
func (f *CategoryForm) Load(ctx context.Context, id uint) {
	draft, err := f.store.FetchCategory(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			f.state = StateNotFound
			f.loadErr = "Category not found"
			return
		}
		f.opts.Logger.Warn("category load failed", zap.Uint("id", id), zap.Error(err))
		f.state = StateLoadFailed
		f.loadErr = "Failed to load category"
		return
	}
	f.id = id
	f.draft = draft
	f.state = StateReady
}

// Draft returns the editable draft, or nil before a successful Load.
func (f *CategoryForm) Draft() *CategoryDraft { return f.draft }

// SetField replaces one scalar text field. No validation happens at set time.
func (f *CategoryForm) SetField(name, value string) error {
	return setText(f.draft, name, value)
}

// SetBool replaces one boolean field.
func (f *CategoryForm) SetBool(name string, value bool) error {
	return setBool(f.draft, name, value)
}

// ListAppend adds an empty entry to a list field.
func (f *CategoryForm) ListAppend(name string) error {
	return listApply(f.draft, name, Append)
}

// ListUpdateAt replaces the entry at index i of a list field. Indices that do
// not address an existing entry are rejected.
func (f *CategoryForm) ListUpdateAt(name string, i int, value string) error {
	return listApplyAt(f.draft, name, i, func(l []string) []string { return UpdateAt(l, i, value) })
}

// ListRemoveAt removes the entry at index i of a list field, keeping the
// floor of one. Indices that do not address an existing entry are rejected.
func (f *CategoryForm) ListRemoveAt(name string, i int) error {
	return listApplyAt(f.draft, name, i, func(l []string) []string { return RemoveAt(l, i) })
}

// Submit validates the draft, derives the cleaned payload and calls the
// update collaborator. The draft is preserved on failure so the editor can
// retry without re-entering data. Returns true when the update succeeded.
func (f *CategoryForm) Submit(ctx context.Context) bool {
	if f.state != StateReady {
		return false
	}
	if f.draft.Name == "" {
		f.notices.Error("Name is required")
		return false
	}
	if err := f.store.UpdateCategory(ctx, f.id, f.draft.payload()); err != nil {
		f.notices.Error(err.Error())
		return false
	}
	f.state = StateSubmitted
	f.notices.Success("Category saved")
	f.scheduleRedirect("/admin/categories")
	return true
}

// ProjectForm owns one project draft for the lifetime of an edit session.
type ProjectForm struct {
	controllerBase
	store ProjectStore
	draft *ProjectDraft
}

// NewProjectForm creates an unloaded project form controller.
func NewProjectForm(store ProjectStore, opts Options) *ProjectForm {
	return &ProjectForm{controllerBase: newControllerBase(opts), store: store}
}

// Load fetches the record and seeds the draft; see CategoryForm.Load.
func (f *ProjectForm) Load(ctx context.Context, id uint) {
	draft, err := f.store.FetchProject(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			f.state = StateNotFound
			f.loadErr = "Project not found"
			return
		}
		f.opts.Logger.Warn("project load failed", zap.Uint("id", id), zap.Error(err))
		f.state = StateLoadFailed
		f.loadErr = "Failed to load project"
		return
	}
	f.id = id
	f.draft = draft
	f.state = StateReady
}

// Draft returns the editable draft, or nil before a successful Load.
func (f *ProjectForm) Draft() *ProjectDraft { return f.draft }

// SetField replaces one scalar text field (including the category selection,
// which stays in string form until submit).
func (f *ProjectForm) SetField(name, value string) error {
	return setText(f.draft, name, value)
}

// SetBool replaces one boolean field.
func (f *ProjectForm) SetBool(name string, value bool) error {
	return setBool(f.draft, name, value)
}

// ListAppend adds an empty entry to a list field.
func (f *ProjectForm) ListAppend(name string) error {
	return listApply(f.draft, name, Append)
}

// ListUpdateAt replaces the entry at index i of a list field. Indices that do
// not address an existing entry are rejected.
func (f *ProjectForm) ListUpdateAt(name string, i int, value string) error {
	return listApplyAt(f.draft, name, i, func(l []string) []string { return UpdateAt(l, i, value) })
}

// ListRemoveAt removes the entry at index i of a list field, keeping the
// floor of one. Indices that do not address an existing entry are rejected.
func (f *ProjectForm) ListRemoveAt(name string, i int) error {
	return listApplyAt(f.draft, name, i, func(l []string) []string { return RemoveAt(l, i) })
}

// RelatedAdd appends a related project id. Adding beyond the cap leaves the
// list unchanged and surfaces an error banner.
func (f *ProjectForm) RelatedAdd(id int64) bool {
	list, ok := AddID(f.draft.RelatedProjects, id, domain.MaxRelatedProjects)
	if !ok {
		f.notices.Error("A project can reference at most " + strconv.Itoa(domain.MaxRelatedProjects) + " related projects")
		return false
	}
	f.draft.RelatedProjects = list
	return true
}

// RelatedRemoveAt removes the related id at index i, keeping the floor of one.
// Indices that do not address an existing entry are rejected.
func (f *ProjectForm) RelatedRemoveAt(i int) error {
	if i < 0 || i >= len(f.draft.RelatedProjects) {
		return errIndexOutOfRange
	}
	f.draft.RelatedProjects = RemoveIDAt(f.draft.RelatedProjects, i)
	return nil
}

// Submit validates the draft, coerces the category selection to an integer,
// derives the cleaned payload and calls the update collaborator. Returns true
// when the update succeeded.
func (f *ProjectForm) Submit(ctx context.Context) bool {
	if f.state != StateReady {
		return false
	}
	if f.draft.Name == "" {
		f.notices.Error("Name is required")
		return false
	}
	if f.draft.CategorySelection == "" {
		f.notices.Error("Category is required")
		return false
	}
	categoryID, err := strconv.Atoi(f.draft.CategorySelection)
	if err != nil {
		f.notices.Error("Category is required")
		return false
	}
	if err := f.store.UpdateProject(ctx, f.id, f.draft.payload(categoryID)); err != nil {
		f.notices.Error(err.Error())
		return false
	}
	f.state = StateSubmitted
	f.notices.Success("Project saved")
	f.scheduleRedirect("/admin/projects")
	return true
}

// draftFields is the field dispatch shared by both draft types.
type draftFields interface {
	textField(name string) (*string, bool)
	boolField(name string) (*bool, bool)
	listField(name string) (*[]string, bool)
}

var (
	errUnknownField    = errors.New("unknown field")
	errIndexOutOfRange = errors.New("index out of range")
)

// ErrUnknownField reports whether err came from addressing a field the draft
// does not have.
func ErrUnknownField(err error) bool { return errors.Is(err, errUnknownField) }

// ErrIndexOutOfRange reports whether err came from a list index that does not
// address an existing entry.
func ErrIndexOutOfRange(err error) bool { return errors.Is(err, errIndexOutOfRange) }

func setText(d draftFields, name, value string) error {
	p, ok := d.textField(name)
	if !ok {
		return errUnknownField
	}
	*p = value
	return nil
}

func setBool(d draftFields, name string, value bool) error {
	p, ok := d.boolField(name)
	if !ok {
		return errUnknownField
	}
	*p = value
	return nil
}

func listApply(d draftFields, name string, op func([]string) []string) error {
	p, ok := d.listField(name)
	if !ok {
		return errUnknownField
	}
	*p = op(*p)
	return nil
}

// listApplyAt guards the indexed list primitives: the index must address an
// existing entry before the op runs.
func listApplyAt(d draftFields, name string, i int, op func([]string) []string) error {
	p, ok := d.listField(name)
	if !ok {
		return errUnknownField
	}
	if i < 0 || i >= len(*p) {
		return errIndexOutOfRange
	}
	*p = op(*p)
	return nil
}
