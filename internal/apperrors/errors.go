package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates a store read or write failed for reasons other
// than a missing row or a constraint conflict.
var ErrPersistence = errors.New("persistence error")

// Persistence wraps a low-level store failure in ErrPersistence while
// keeping the driver error in the chain.
func Persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// NotFoundKind names the kind of record a lookup failed to find, so the
// dispatcher can pick the right user-facing message.
type NotFoundKind string

const (
	NotFoundEmail         NotFoundKind = "email"
	NotFoundCategory      NotFoundKind = "category"
	NotFoundCard          NotFoundKind = "card"
	NotFoundStockCategory NotFoundKind = "stock_category"
)

// NotFoundError carries which kind of record was missing and the name the
// caller supplied. It unwraps to ErrNotFound.
type NotFoundError struct {
	Kind NotFoundKind
	Name string
}

func (e *NotFoundError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound builds a NotFoundError for the given kind and name.
func NewNotFound(kind NotFoundKind, name string) error {
	return &NotFoundError{Kind: kind, Name: name}
}

// LinkConflictSide says which half of a chat link already existed when a
// /link attempt failed.
type LinkConflictSide string

const (
	// AccountSide: the account is already linked to a different chat.
	AccountSide LinkConflictSide = "account"
	// ChatSide: the chat is already linked to a different account.
	ChatSide LinkConflictSide = "chat"
)

// AlreadyLinkedError reports a link conflict. It unwraps to ErrDuplicate.
type AlreadyLinkedError struct {
	Side LinkConflictSide
}

func (e *AlreadyLinkedError) Error() string {
	return fmt.Sprintf("already linked (%s side)", e.Side)
}

func (e *AlreadyLinkedError) Unwrap() error { return ErrDuplicate }
