package service

import "errors"

var (
	// ErrScenarioNotFound indicates an operation referenced a scenario id
	// that is not in the store.
	ErrScenarioNotFound = errors.New("scenario not found")

	// ErrTemplateNotFound indicates an unknown template id.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrValidation indicates malformed caller input, e.g. an empty
	// scenario name or an expiry in the past.
	ErrValidation = errors.New("validation failed")

	// ErrNoActiveScenario indicates a scenario-context operation was
	// invoked while in live mode.
	ErrNoActiveScenario = errors.New("no active scenario")
)
