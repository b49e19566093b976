package session

import (
	"sync"

	domainerr "github.com/amirhossein-jamali/cfgstore-diag/internal/domain/error"
	"github.com/google/uuid"
)

// Session is a client context holding at most one pending error list,
// the one left by its last failed operation.
type Session struct {
	id  uuid.UUID
	rep *domainerr.Reporter

	mu      sync.Mutex
	pending *domainerr.Info
}

// New creates a session with a fresh identifier
func New(rep *domainerr.Reporter) *Session {
	return &Session{id: uuid.New(), rep: rep}
}

// ID returns the session identifier
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Reporter returns the reporter operations of this session record errors with
func (s *Session) Reporter() *domainerr.Reporter {
	return s.rep
}

// Begin starts a new operation, discarding an unretrieved pending list
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending.Free()
	s.pending = nil
}

// Finalize ends an operation. An empty info yields CodeOK and clears any
// stale pending list; otherwise info becomes the pending list and the code
// of its first record is returned. The session owns info afterwards.
func (s *Session) Finalize(info *domainerr.Info) domainerr.Code {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != info {
		s.pending.Free()
	}
	if info.Empty() {
		s.pending = nil
		return domainerr.CodeOK
	}

	s.pending = info
	return info.Code()
}

// PendingError returns the pending list, nil when the last operation succeeded.
// The list stays owned by the session and must not be used once another
// operation begins or finalizes; concurrent readers use PendingRecords.
func (s *Session) PendingError() *domainerr.Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending
}

// PendingRecords returns a copy of the pending records
func (s *Session) PendingRecords() []*domainerr.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending.Records()
}

// TakeError detaches the pending list; the caller owns it afterwards
func (s *Session) TakeError() *domainerr.Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := s.pending
	s.pending = nil
	return info
}

// CheckArg records an invalid argument error for the calling function and
// finalizes it when invalid is set. ok is false in that case.
func (s *Session) CheckArg(invalid bool) (code domainerr.Code, ok bool) {
	if !invalid {
		return domainerr.CodeOK, true
	}
	info := s.rep.InvalArgFor(nil, domainerr.FuncName(1))
	return s.Finalize(info), false
}

// APIRet hands info to s and returns the status to report to the caller.
// Without a session the list is released after its code is taken.
func APIRet(s *Session, info *domainerr.Info) domainerr.Code {
	if s == nil {
		code := info.Code()
		info.Free()
		return code
	}
	return s.Finalize(info)
}
