package domain

import "errors"

// Sentinel errors shared between the repository and usecase layers.
var (
	// ErrNotFound signals a talent-scoped row that does not exist or does
	// not belong to the caller.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateSkill signals the talent already has the skill attached.
	ErrDuplicateSkill = errors.New("skill already attached to this talent")
)
