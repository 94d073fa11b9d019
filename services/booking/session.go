package booking

import (
	"context"
)

// LoadSession reconstructs the aggregate for an active session. An absent,
// expired or malformed record is a hard "not found or expired" error here:
// callers of this path expect a mid-flow session to exist.
func (s *DefaultBookingFlowService) LoadSession(ctx context.Context, sessionID string) (*State, error) {
	rec, ok := s.Store.Load(ctx, sessionID)
	if !ok {
		return nil, ErrSessionNotFound()
	}
	return RestoreState(rec), nil
}

// SaveSession persists the aggregate, assigning a session id on first save.
// A store failure here is fatal for the caller: continuing with unsaved state
// would desync client and server.
func (s *DefaultBookingFlowService) SaveSession(ctx context.Context, st *State) error {
	if st.SessionID == "" {
		st.SessionID = GenerateSessionID()
	}
	return s.Store.Save(ctx, st.SessionID, st.Snapshot())
}

// ClearSession removes the persisted record and detaches the aggregate from
// its session id.
func (s *DefaultBookingFlowService) ClearSession(ctx context.Context, st *State) {
	if st.SessionID != "" {
		s.Store.Clear(ctx, st.SessionID)
		st.SessionID = ""
	}
}

// ExtendSession slides the expiry window on user activity without rewriting
// the record. Failures degrade to a no-op.
func (s *DefaultBookingFlowService) ExtendSession(ctx context.Context, sessionID string) {
	s.Store.Extend(ctx, sessionID)
}

// CancelSession abandons an in-progress booking.
func (s *DefaultBookingFlowService) CancelSession(ctx context.Context, sessionID string) {
	s.Store.Clear(ctx, sessionID)
}

// mutate is the shared load-modify-save cycle behind every flow operation.
func (s *DefaultBookingFlowService) mutate(ctx context.Context, sessionID string, fn func(*State) error) (*State, error) {
	st, err := s.LoadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.SaveSession(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
