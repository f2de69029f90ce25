package lifecycle

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
	Kind    error // ErrNotFound or ErrConflict when not allowed
}

// Error converts the guard result to a classified error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	kind := r.Kind
	if kind == nil {
		kind = ErrConflict
	}
	return fmt.Errorf("%w: %s", kind, r.Reason)
}

// ExistsContext provides context for the existence guard.
type ExistsContext struct {
	Entity string
	ID     int
	Exists bool
}

// CreateContext provides context for creation guards.
type CreateContext struct {
	Entity     string
	Code       string
	CodeHolder int  // ID of the record holding Code, if any
	CodeTaken  bool // true if some record already holds Code
}

// UpdateContext provides context for update guards.
type UpdateContext struct {
	Entity      string
	ID          int
	CurrentCode string
	NewCode     string
	CodeHolder  int
	CodeTaken   bool
}

// PurgeContext provides context for purge guards.
type PurgeContext struct {
	Entity    string
	ID        int
	IsDeleted bool
}

// CanAccess evaluates whether an operation may proceed on a record.
// Rules:
// - The record must exist
func CanAccess(ctx ExistsContext) GuardResult {
	if !ctx.Exists {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s with id %d not found", ctx.Entity, ctx.ID),
			Kind:    ErrNotFound,
		}
	}
	return GuardResult{Allowed: true}
}

// CanCreate evaluates whether a record with the given code can be created.
// Rules:
// - Code must not be held by any existing record, deleted or not
func CanCreate(ctx CreateContext) GuardResult {
	if ctx.CodeTaken {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s with code %q already exists (id %d)", ctx.Entity, ctx.Code, ctx.CodeHolder),
			Kind:    ErrConflict,
		}
	}
	return GuardResult{Allowed: true}
}

// CodeChanged reports whether an update would set a new code value.
func (ctx UpdateContext) CodeChanged() bool {
	return ctx.NewCode != ctx.CurrentCode
}

// CanUpdate evaluates whether a record can be updated with a new code.
// Rules:
// - An unchanged code never conflicts
// - A changed code must not be held by any record
func CanUpdate(ctx UpdateContext) GuardResult {
	if !ctx.CodeChanged() {
		return GuardResult{Allowed: true}
	}
	if ctx.CodeTaken {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s with code %q already exists (id %d)", ctx.Entity, ctx.NewCode, ctx.CodeHolder),
			Kind:    ErrConflict,
		}
	}
	return GuardResult{Allowed: true}
}

// CanPurge evaluates whether a record can be physically removed.
// Rules:
// - The record must be soft-deleted first
func CanPurge(ctx PurgeContext) GuardResult {
	if next := Transition(StateOf(ctx.IsDeleted), EventPurge); next == StateInvalid {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%s %d must be marked deleted before it can be purged", ctx.Entity, ctx.ID),
			Kind:    ErrConflict,
		}
	}
	return GuardResult{Allowed: true}
}
