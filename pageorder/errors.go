package pageorder

import "errors"

var (
	// ErrBadRule indicates a rule line that is not "<int>|<int>".
	ErrBadRule = errors.New("pageorder: rule must be <page>|<page>")
	// ErrBadUpdate indicates an update line that is not comma-separated integers.
	ErrBadUpdate = errors.New("pageorder: update must be comma-separated pages")
	// ErrEmptyUpdate indicates an update with no middle page.
	ErrEmptyUpdate = errors.New("pageorder: update is empty")
)
