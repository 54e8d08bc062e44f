package model

import (
	"weather-hunt/internal/domain/entity"
	"weather-hunt/internal/domain/failure"
)

// Phase is the screen state of a lookup controller.
type Phase string

const (
	PhaseIdle             Phase = "IDLE"
	PhaseLoading          Phase = "LOADING"
	PhaseSuggestionsShown Phase = "SUGGESTIONS_SHOWN"
	PhaseResultShown      Phase = "RESULT_SHOWN"
	PhaseErrorShown       Phase = "ERROR_SHOWN"
)

// LookupError is the error part of the view.
type LookupError struct {
	Kind    failure.Kind `json:"kind"`
	Message string       `json:"message"`
}

// WeatherView is a weather result with its rendered fields.
type WeatherView struct {
	entity.WeatherResult
	IconURL string `json:"iconUrl"`
	Display string `json:"display"`
}

// NewWeatherView renders result for display.
func NewWeatherView(result entity.WeatherResult) *WeatherView {
	return &WeatherView{
		WeatherResult: result,
		IconURL:       result.IconURL(),
		Display:       result.String(),
	}
}

// LookupState is a snapshot of everything the screen renders.
type LookupState struct {
	SessionID          string              `json:"sessionId,omitempty"`
	Query              string              `json:"query"`
	Phase              Phase               `json:"phase"`
	Loading            bool                `json:"loading"`
	Suggestions        []entity.Suggestion `json:"suggestions"`
	SuggestionsVisible bool                `json:"suggestionsVisible"`
	Selected           *entity.Suggestion  `json:"selected,omitempty"`
	Weather            *WeatherView        `json:"weather,omitempty"`
	Error              *LookupError        `json:"error,omitempty"`
	Sequence           uint64              `json:"sequence"`
}

// UpdateQueryDTO is the body of a query update.
type UpdateQueryDTO struct {
	Query string `json:"query"`
}
