package domain

import "errors"

var (
	// Participant errors
	ErrInvalidWeight        = errors.New("weight must be positive")
	ErrInvalidName          = errors.New("invalid participant name")
	ErrDuplicateParticipant = errors.New("duplicate participant id")
	ErrParticipantNotFound  = errors.New("participant not found")

	// Bill errors
	ErrUnknownPayer    = errors.New("bill payer is not a project participant")
	ErrUnknownOwer     = errors.New("bill ower is not a project participant")
	ErrDuplicateOwer   = errors.New("bill lists the same ower twice")
	ErrDuplicateBill   = errors.New("duplicate bill id")
	ErrProjectNotFound = errors.New("project not found")

	// Transaction errors
	ErrSameParticipant = errors.New("ower and receiver must differ")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
