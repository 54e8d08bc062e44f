package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-hunt/internal/domain/usecase/weather"
	"weather-hunt/pkg/log"
	"weather-hunt/pkg/msg"
)

// ControllerFactory builds the controller of a new session.
type ControllerFactory func(id string) weather.UseCase

type entry struct {
	controller weather.UseCase
	lastSeen   time.Time
}

type sessionUseCase struct {
	mu       sync.Mutex
	sessions map[string]*entry
	factory  ControllerFactory
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionUseCase creates an empty registry. Sessions idle for longer than ttl are removed by Sweep.
func NewSessionUseCase(factory ControllerFactory, ttl time.Duration) UseCase {
	return &sessionUseCase{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (uc *sessionUseCase) Open() (string, weather.UseCase) {
	id := uuid.NewString()
	controller := uc.factory(id)

	uc.mu.Lock()
	uc.sessions[id] = &entry{controller: controller, lastSeen: uc.now()}
	uc.mu.Unlock()

	log.Debug(msg.GetMessage("session.opened", id))
	return id, controller
}

func (uc *sessionUseCase) Get(id string) (weather.UseCase, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = uc.now()
	return e.controller, nil
}

func (uc *sessionUseCase) Close(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(uc.sessions, id)
	log.Debug(msg.GetMessage("session.closed", id))
	return nil
}

func (uc *sessionUseCase) Sweep(now time.Time) int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	removed := 0
	for id, e := range uc.sessions {
		if now.Sub(e.lastSeen) > uc.ttl {
			delete(uc.sessions, id)
			removed++
		}
	}
	return removed
}

func (uc *sessionUseCase) Count() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return len(uc.sessions)
}
