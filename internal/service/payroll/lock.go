package payroll

import "sync"

// generationLock serializes payroll generation per (employee, period) key:
// at most one run may be in flight for a pair at a time. A second caller is
// rejected rather than queued, since re-running against the same inputs is
// what the caller would do anyway.
type generationLock struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newGenerationLock() *generationLock {
	return &generationLock{inFlight: make(map[string]struct{})}
}

func (l *generationLock) tryAcquire(employeeID, periodID string) bool {
	key := employeeID + "/" + periodID

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.inFlight[key]; held {
		return false
	}
	l.inFlight[key] = struct{}{}
	return true
}

func (l *generationLock) release(employeeID, periodID string) {
	key := employeeID + "/" + periodID

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.inFlight, key)
}
