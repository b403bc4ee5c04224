package form

import (
	"context"
	"sort"
)

// Wizard step numbers for the project editor. The steps are a presentation
// grouping over one flat draft, not independent sub-forms; the final submit's
// required-field check is the real gate.
const (
	StepBasics  = 1
	StepContent = 2
	StepImages  = 3
	StepRelated = 4
	StepSEO     = 5
	wizardFirst = StepBasics
	wizardLast  = StepSEO
)

// Wizard wraps a ProjectForm with the five-step editor flow: forward
// navigation gated by per-step validation, unconditional backward navigation,
// and direct jumps as a deliberate escape hatch.
type Wizard struct {
	form      *ProjectForm
	current   int
	completed map[int]struct{}
	// scrollTop is the view hook invoked after advancing a step. Optional.
	scrollTop func()
}

// NewWizard creates a wizard positioned at step 1.
func NewWizard(form *ProjectForm, scrollTop func()) *Wizard {
	return &Wizard{
		form:      form,
		current:   wizardFirst,
		completed: make(map[int]struct{}),
		scrollTop: scrollTop,
	}
}

// Form returns the wrapped project form controller.
func (w *Wizard) Form() *ProjectForm { return w.form }

// Current returns the current step number.
func (w *Wizard) Current() int { return w.current }

// Completed reports whether a step has been completed via Next.
func (w *Wizard) Completed(step int) bool {
	_, ok := w.completed[step]
	return ok
}

// CompletedSteps returns the completed step numbers in ascending order.
func (w *Wizard) CompletedSteps() []int {
	out := make([]int, 0, len(w.completed))
	for s := range w.completed {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// Next advances one step after the current step's validation passes. Only
// step 1 validates today (name and category); the later steps intentionally
// have none. On failure a transient error is shown and the step does not
// change. Completing a step is idempotent.
func (w *Wizard) Next() bool {
	if w.current >= wizardLast {
		return false
	}
	if !w.validateStep(w.current) {
		return false
	}
	w.completed[w.current] = struct{}{}
	w.current++
	if w.scrollTop != nil {
		w.scrollTop()
	}
	return true
}

// Previous moves one step back unconditionally. Unavailable from step 1.
func (w *Wizard) Previous() bool {
	if w.current <= wizardFirst {
		return false
	}
	w.current--
	return true
}

// GoToStep jumps directly to step n regardless of completion or validation.
// Clicking a step indicator maps here.
func (w *Wizard) GoToStep(n int) bool {
	if n < wizardFirst || n > wizardLast {
		return false
	}
	w.current = n
	return true
}

// Submit delegates to the project form's submit with the full draft, however
// much of it was visited. Only step 5's UI exposes this action.
func (w *Wizard) Submit(ctx context.Context) bool {
	return w.form.Submit(ctx)
}

func (w *Wizard) validateStep(step int) bool {
	if step != StepBasics {
		return true
	}
	d := w.form.Draft()
	if d == nil || d.Name == "" || d.CategorySelection == "" {
		w.form.Notices().Error("Name and category are required")
		return false
	}
	return true
}
