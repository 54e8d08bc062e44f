package weather

import (
	"context"
	"errors"

	"weather-hunt/internal/domain/model"
)

var (
	// ErrSuperseded is returned when a newer action was issued while this one was in flight.
	// The returned state is the current one; the late response was discarded.
	ErrSuperseded = errors.New("action superseded by a newer one")
	// ErrInvalidSuggestion is returned when the selected index is outside the suggestion list.
	ErrInvalidSuggestion = errors.New("suggestion index out of range")
)

// UseCase is the interaction controller of one lookup screen.
// Actions return the resulting state snapshot; a failed action also returns its error,
// which is a *failure.Error for lookup failures.
type UseCase interface {
	// SetQuery records the typed text and clears any selected suggestion.
	SetQuery(query string) model.LookupState

	// Search lists geocoding suggestions for the current query.
	Search(ctx context.Context) (model.LookupState, error)

	// SelectSuggestion picks a suggestion; the next GetWeather uses its coordinates.
	SelectSuggestion(index int) (model.LookupState, error)

	// DismissSuggestions hides the suggestion list without selecting.
	DismissSuggestions() model.LookupState

	// GetWeather fetches the weather for the selected suggestion, or for the query
	// after resolving it when nothing is selected.
	GetWeather(ctx context.Context) (model.LookupState, error)

	// State returns the current snapshot.
	State() model.LookupState
}
