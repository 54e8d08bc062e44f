package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-hunt/internal/domain/failure"
	"weather-hunt/internal/domain/model"
	"weather-hunt/internal/domain/usecase/session"
	"weather-hunt/internal/domain/usecase/weather"
)

type WeatherController struct {
	api      *echo.Group
	sessions session.UseCase
	newUC    session.ControllerFactory
}

// NewWeatherController builds the lookup routes. newUC creates the throwaway controller behind GET /lookup.
func NewWeatherController(api *echo.Group, sessions session.UseCase, newUC session.ControllerFactory) *WeatherController {
	return &WeatherController{api: api, sessions: sessions, newUC: newUC}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/sessions", controller.OpenSession)
	controller.api.GET("/sessions/:id", controller.GetSession)
	controller.api.DELETE("/sessions/:id", controller.CloseSession)
	controller.api.PUT("/sessions/:id/query", controller.SetQuery)
	controller.api.POST("/sessions/:id/search", controller.Search)
	controller.api.POST("/sessions/:id/suggestions/:index/select", controller.SelectSuggestion)
	controller.api.POST("/sessions/:id/suggestions/dismiss", controller.DismissSuggestions)
	controller.api.POST("/sessions/:id/weather", controller.GetWeather)
	controller.api.GET("/lookup", controller.Lookup)
}

// OpenSession godoc
// @Summary Open a lookup session
// @Description Create a session holding an idle lookup screen
// @Tags sessions
// @Produce json
// @Success 201 {object} model.LookupState "Initial state"
// @Router /sessions [post]
func (controller *WeatherController) OpenSession(c echo.Context) error {
	_, uc := controller.sessions.Open()
	return c.JSON(http.StatusCreated, uc.State())
}

// GetSession godoc
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.LookupState "Current state"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (controller *WeatherController) GetSession(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}
	return c.JSON(http.StatusOK, uc.State())
}

// CloseSession godoc
// @Summary Close a lookup session
// @Tags sessions
// @Param id path string true "Session id"
// @Success 204 "Session closed"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (controller *WeatherController) CloseSession(c echo.Context) error {
	if err := controller.sessions.Close(c.Param("id")); err != nil {
		return sessionNotFound(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// SetQuery godoc
// @Summary Update the typed query
// @Description Record the location text; any selected suggestion is cleared
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param query body model.UpdateQueryDTO true "Location text"
// @Success 200 {object} model.LookupState "Updated state"
// @Failure 400 {object} model.ErrorResponse "Invalid request body"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id}/query [put]
func (controller *WeatherController) SetQuery(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}

	var dto model.UpdateQueryDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request body"})
	}
	return c.JSON(http.StatusOK, uc.SetQuery(dto.Query))
}

// Search godoc
// @Summary Search location suggestions
// @Description List the geocoding candidates of the current query
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.LookupState "Suggestions shown"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Failure 409 {object} model.LookupState "Superseded by a newer action"
// @Failure 502 {object} model.LookupState "Geocoding service error"
// @Failure 504 {object} model.LookupState "Geocoding service unreachable"
// @Router /sessions/{id}/search [post]
func (controller *WeatherController) Search(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}

	state, err := uc.Search(c.Request().Context())
	return c.JSON(statusFor(err), state)
}

// SelectSuggestion godoc
// @Summary Select a suggestion
// @Description Pick a suggestion by position; the next weather request uses its coordinates
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Param index path int true "Suggestion position, starting at 0"
// @Success 200 {object} model.LookupState "Suggestion selected"
// @Failure 400 {object} model.LookupState "No suggestion at index"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id}/suggestions/{index}/select [post]
func (controller *WeatherController) SelectSuggestion(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "index must be an integer"})
	}

	state, err := uc.SelectSuggestion(index)
	return c.JSON(statusFor(err), state)
}

// DismissSuggestions godoc
// @Summary Dismiss the suggestion list
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.LookupState "Suggestions hidden"
// @Failure 404 {object} model.ErrorResponse "Session not found"
// @Router /sessions/{id}/suggestions/dismiss [post]
func (controller *WeatherController) DismissSuggestions(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}
	return c.JSON(http.StatusOK, uc.DismissSuggestions())
}

// GetWeather godoc
// @Summary Get current weather
// @Description Fetch the weather of the selected suggestion, or of the resolved query when nothing is selected
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} model.LookupState "Result shown"
// @Failure 404 {object} model.LookupState "Location or session not found"
// @Failure 409 {object} model.LookupState "Superseded by a newer action"
// @Failure 502 {object} model.LookupState "Upstream service error"
// @Failure 504 {object} model.LookupState "Upstream service unreachable"
// @Router /sessions/{id}/weather [post]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	uc, err := controller.sessions.Get(c.Param("id"))
	if err != nil {
		return sessionNotFound(c, err)
	}

	state, err := uc.GetWeather(c.Request().Context())
	return c.JSON(statusFor(err), state)
}

// Lookup godoc
// @Summary One-shot weather lookup
// @Description Resolve the location text and fetch its weather without opening a session
// @Tags weather
// @Produce json
// @Param q query string true "Location text"
// @Success 200 {object} model.LookupState "Result shown"
// @Failure 400 {object} model.ErrorResponse "Missing q parameter"
// @Failure 404 {object} model.LookupState "Location not found"
// @Failure 502 {object} model.LookupState "Upstream service error"
// @Failure 504 {object} model.LookupState "Upstream service unreachable"
// @Router /lookup [get]
func (controller *WeatherController) Lookup(c echo.Context) error {
	query := c.QueryParam("q")
	if strings.TrimSpace(query) == "" {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "q is required"})
	}

	uc := controller.newUC("")
	uc.SetQuery(query)
	state, err := uc.GetWeather(c.Request().Context())
	return c.JSON(statusFor(err), state)
}

func sessionNotFound(c echo.Context, err error) error {
	return c.JSON(http.StatusNotFound, model.ErrorResponse{Message: err.Error()})
}

// statusFor maps an action outcome to its HTTP status.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, weather.ErrInvalidSuggestion):
		return http.StatusBadRequest
	case errors.Is(err, weather.ErrSuperseded):
		return http.StatusConflict
	case failure.IsNotFound(err):
		return http.StatusNotFound
	case failure.IsService(err):
		return http.StatusBadGateway
	case failure.IsNetwork(err):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
