package models

import "errors"

// Sentinel errors shared by repositories and services. Handlers translate
// them into HTTP status codes with errors.Is.
var (
	// ErrTrabajitoNotFound covers both a missing record and an actor that is
	// not a participant of the record. The two cases are indistinguishable on
	// purpose: the ownership check is part of the lookup predicate, so a
	// non-participant learns nothing about whether the record exists.
	ErrTrabajitoNotFound = errors.New("trabajito not found")

	// ErrEndNumberMismatch is returned when the confirmation code submitted
	// by the solicitor does not match the one stored by the hired worker.
	ErrEndNumberMismatch = errors.New("confirmation number does not match")

	// ErrAlreadyConfirmed is returned when a lifecycle mutation targets a
	// trabajito that has already been confirmed by its solicitor.
	ErrAlreadyConfirmed = errors.New("trabajito already confirmed")

	// ErrNotAwaitingConfirmation is returned when a confirmation is submitted
	// before the hired worker has registered an end number.
	ErrNotAwaitingConfirmation = errors.New("trabajito is not awaiting confirmation")

	// ErrSelfHire is returned when a solicitor tries to hire themselves.
	ErrSelfHire = errors.New("solicitor and hired user must differ")

	// ErrDateFinishBeforeInit is returned when the requested finish date
	// precedes the job's start date.
	ErrDateFinishBeforeInit = errors.New("date_finish must not precede date_init")

	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")

	ErrStatusNotFound       = errors.New("status not found")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
	ErrDuplicatePortfolio   = errors.New("user already has a portfolio")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrMunicipalityNotFound = errors.New("municipality not found")

	ErrResetCodeInvalid = errors.New("invalid or expired reset code")
)
