package services

import "errors"

// Sentinel errors shared by the services and the HTTP mapping layer.
var (
	// Validation / bad input
	ErrTeamNameRequired    = errors.New("team name is required")
	ErrInvalidGroupLayout  = errors.New("number of groups and teams per group must be positive")
	ErrInvalidAdvanceCount = errors.New("teams advancing per group must be positive")
	ErrNegativeScore       = errors.New("set counts cannot be negative")
	ErrScheduleMismatch    = errors.New("submitted match list does not match the stored schedule")
	ErrPlayoffDraw         = errors.New("playoff matches cannot end level")

	// Conflicts / stage gates
	ErrTeamNameConflict     = errors.New("team name is already registered")
	ErrGroupStageIncomplete = errors.New("group stage is not complete")
	ErrPlayoffsIncomplete   = errors.New("playoff stage is not complete")

	// Missing resources
	ErrGroupNotFound = errors.New("group not found")
	ErrNoBracket     = errors.New("playoff bracket has not been generated")

	// Auth
	ErrInvalidCredentials = errors.New("invalid organizer password")

	// Export
	ErrPublishingDisabled = errors.New("workbook publishing is not configured")
)
