package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Participant errors
	ErrMsgParticipantNotFound      = "participant not found"
	ErrMsgParticipantAlreadyJoined = "participant already signed up"

	// Matching errors
	ErrMsgInsufficientParticipants = "not enough participants to match"
	ErrMsgInvariantViolation       = "matching produced duplicate assignments"
	ErrMsgMatchingInProgress       = "a matching run is already in progress"
	ErrMsgNoMatchesFound           = "no matches recorded"
	ErrMsgSignupsClosed            = "signups are closed"

	// Blight errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgAlreadyInfected   = "character is already blighted"
	ErrMsgNotInfected       = "character is not blighted"
	ErrMsgCharacterDead     = "character is dead"

	// Weather errors
	ErrMsgNoWeatherRecorded = "no weather recorded yet"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Participant errors
	ErrParticipantNotFound      = errors.New(ErrMsgParticipantNotFound)
	ErrParticipantAlreadyJoined = errors.New(ErrMsgParticipantAlreadyJoined)

	// Matching errors
	ErrInsufficientParticipants = errors.New(ErrMsgInsufficientParticipants)
	ErrInvariantViolation       = errors.New(ErrMsgInvariantViolation)
	ErrMatchingInProgress       = errors.New(ErrMsgMatchingInProgress)
	ErrNoMatchesFound           = errors.New(ErrMsgNoMatchesFound)
	ErrSignupsClosed            = errors.New(ErrMsgSignupsClosed)

	// Blight errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrAlreadyInfected   = errors.New(ErrMsgAlreadyInfected)
	ErrNotInfected       = errors.New(ErrMsgNotInfected)
	ErrCharacterDead     = errors.New(ErrMsgCharacterDead)

	// Weather errors
	ErrNoWeatherRecorded = errors.New(ErrMsgNoWeatherRecorded)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
