package memory

import (
	"context"
	"sync"

	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/domain/repository"
)

type session struct {
	lineMapper  *domain.LineMapperState
	campusPaths *domain.CampusPathsState
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionRepository - хранилище сессий в памяти процесса, без TTL
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]*session),
	}
}

func (r *sessionRepository) GetLineMapper(_ context.Context, sessionID string) (*domain.LineMapperState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.lineMapper == nil {
		return nil, nil
	}
	state := cloneLineMapper(*s.lineMapper)
	return &state, nil
}

func (r *sessionRepository) SaveLineMapper(_ context.Context, sessionID string, state domain.LineMapperState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := cloneLineMapper(state)
	r.get(sessionID).lineMapper = &cp
	return nil
}

func (r *sessionRepository) GetCampusPaths(_ context.Context, sessionID string) (*domain.CampusPathsState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok || s.campusPaths == nil {
		return nil, nil
	}
	state := cloneCampusPaths(*s.campusPaths)
	return &state, nil
}

func (r *sessionRepository) SaveCampusPaths(_ context.Context, sessionID string, state domain.CampusPathsState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := cloneCampusPaths(state)
	r.get(sessionID).campusPaths = &cp
	return nil
}

func (r *sessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// get must be called with the write lock held.
func (r *sessionRepository) get(sessionID string) *session {
	s, ok := r.sessions[sessionID]
	if !ok {
		s = &session{}
		r.sessions[sessionID] = s
	}
	return s
}

func cloneLineMapper(s domain.LineMapperState) domain.LineMapperState {
	s.Segments = append([]domain.Segment{}, s.Segments...)
	return s
}

func cloneCampusPaths(s domain.CampusPathsState) domain.CampusPathsState {
	s.Buildings = append([]domain.Building{}, s.Buildings...)
	s.Segments = append([]domain.Segment{}, s.Segments...)
	return s
}
