package weather

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"weather-hunt/internal/domain/entity"
	"weather-hunt/internal/domain/failure"
	"weather-hunt/internal/domain/gateway/api"
	"weather-hunt/internal/domain/model"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

// weatherUseCase holds the state of one screen. The mutex is never held across a gateway call;
// each action takes a sequence number and only the latest one may write its result.
type weatherUseCase struct {
	id         string
	apiGateway api.WeatherGateway

	mu                 sync.Mutex
	sequence           uint64
	query              string
	phase              model.Phase
	loading            bool
	suggestions        []entity.Suggestion
	suggestionsVisible bool
	selected           *entity.Suggestion
	weather            *entity.WeatherResult
	err                *model.LookupError
}

// NewWeatherUseCase creates an idle controller. id tags the state snapshots and may be empty.
func NewWeatherUseCase(id string, apiGateway api.WeatherGateway) UseCase {
	return &weatherUseCase{
		id:          id,
		apiGateway:  apiGateway,
		phase:       model.PhaseIdle,
		suggestions: []entity.Suggestion{},
	}
}

// SetQuery records the typed text and clears any selected suggestion
func (uc *weatherUseCase) SetQuery(query string) model.LookupState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.query = query
	uc.selected = nil
	return uc.snapshot()
}

// Search lists geocoding suggestions for the current query
func (uc *weatherUseCase) Search(ctx context.Context) (model.LookupState, error) {
	uc.mu.Lock()
	sequence := uc.begin()
	uc.suggestions = []entity.Suggestion{}
	uc.suggestionsVisible = false
	query := uc.query
	uc.mu.Unlock()

	suggestions, err := uc.apiGateway.ListSuggestions(ctx, query)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if stale := uc.checkStale("search", sequence); stale != nil {
		return uc.snapshot(), stale
	}
	if err != nil {
		return uc.fail("search", err), err
	}

	uc.loading = false
	uc.suggestions = suggestions
	uc.suggestionsVisible = true
	uc.phase = model.PhaseSuggestionsShown
	return uc.snapshot(), nil
}

// SelectSuggestion picks a suggestion; the next GetWeather uses its coordinates
func (uc *weatherUseCase) SelectSuggestion(index int) (model.LookupState, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if index < 0 || index >= len(uc.suggestions) {
		return uc.snapshot(), ErrInvalidSuggestion
	}

	// A selection supersedes whatever is still in flight.
	uc.sequence++
	chosen := uc.suggestions[index]
	uc.selected = &chosen
	uc.query = chosen.DisplayName
	uc.suggestionsVisible = false
	uc.loading = false
	uc.err = nil
	uc.weather = nil
	uc.phase = model.PhaseIdle
	return uc.snapshot(), nil
}

// DismissSuggestions hides the suggestion list without selecting
func (uc *weatherUseCase) DismissSuggestions() model.LookupState {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.suggestionsVisible = false
	if uc.phase == model.PhaseSuggestionsShown {
		uc.phase = model.PhaseIdle
	}
	return uc.snapshot()
}

// GetWeather fetches the weather for the selected suggestion or the resolved query
func (uc *weatherUseCase) GetWeather(ctx context.Context) (model.LookupState, error) {
	uc.mu.Lock()
	sequence := uc.begin()
	uc.weather = nil
	query := uc.query
	var coordinates *entity.Coordinates
	if uc.selected != nil {
		c := uc.selected.Coordinates()
		coordinates = &c
	}
	uc.mu.Unlock()

	if coordinates == nil {
		resolved, err := uc.apiGateway.ResolveCoordinates(ctx, query)
		if err != nil {
			uc.mu.Lock()
			defer uc.mu.Unlock()
			if stale := uc.checkStale("weather", sequence); stale != nil {
				return uc.snapshot(), stale
			}
			return uc.fail("weather", err), err
		}

		// Skip the second call when a newer action already took over.
		uc.mu.Lock()
		stale := uc.checkStale("weather", sequence)
		state := uc.snapshot()
		uc.mu.Unlock()
		if stale != nil {
			return state, stale
		}
		coordinates = &resolved
	}

	result, err := uc.apiGateway.FetchWeather(ctx, coordinates.Latitude, coordinates.Longitude)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if stale := uc.checkStale("weather", sequence); stale != nil {
		return uc.snapshot(), stale
	}
	if err != nil {
		return uc.fail("weather", err), err
	}

	uc.loading = false
	uc.weather = &result
	uc.phase = model.PhaseResultShown
	return uc.snapshot(), nil
}

// State returns the current snapshot
func (uc *weatherUseCase) State() model.LookupState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.snapshot()
}

// begin starts an action. Caller holds mu.
func (uc *weatherUseCase) begin() uint64 {
	uc.sequence++
	uc.loading = true
	uc.err = nil
	uc.phase = model.PhaseLoading
	return uc.sequence
}

// checkStale returns ErrSuperseded when sequence is no longer the latest. Caller holds mu.
func (uc *weatherUseCase) checkStale(action string, sequence uint64) error {
	if sequence == uc.sequence {
		return nil
	}
	log.Debug(msg.GetMessage("lookup.action.stale", action, sequence, uc.sequence), zap.String("session_id", uc.id))
	return ErrSuperseded
}

// fail moves the screen to the error phase. Caller holds mu.
func (uc *weatherUseCase) fail(action string, err error) model.LookupState {
	kind := failure.KindOf(err)
	log.Warn(msg.GetMessage("lookup.action.failed", action, err),
		zap.String("session_id", uc.id),
		zap.String("kind", string(kind)),
	)

	uc.loading = false
	uc.err = &model.LookupError{Kind: kind, Message: err.Error()}
	uc.phase = model.PhaseErrorShown
	return uc.snapshot()
}

// snapshot copies the state so callers never share slices with the controller. Caller holds mu.
func (uc *weatherUseCase) snapshot() model.LookupState {
	state := model.LookupState{
		SessionID:          uc.id,
		Query:              uc.query,
		Phase:              uc.phase,
		Loading:            uc.loading,
		Suggestions:        append([]entity.Suggestion{}, uc.suggestions...),
		SuggestionsVisible: uc.suggestionsVisible,
		Sequence:           uc.sequence,
	}
	if uc.selected != nil {
		selected := *uc.selected
		state.Selected = &selected
	}
	if uc.weather != nil {
		state.Weather = model.NewWeatherView(*uc.weather)
	}
	if uc.err != nil {
		lookupErr := *uc.err
		state.Error = &lookupErr
	}
	return state
}
