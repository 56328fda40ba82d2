package lock

import (
	"context"
	"sync"

	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// LocalLocker serializes writers of the same plan inside one process.
// Entries are dropped once no goroutine holds or waits on them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[uuid.UUID]*keyLock)}
}

var _ shared.PlanLocker = (*LocalLocker)(nil)

func (l *LocalLocker) Lock(ctx context.Context, planID uuid.UUID) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[planID]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[planID] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(planID, kl)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.sem
			l.release(planID, kl)
		})
	}, nil
}

func (l *LocalLocker) release(planID uuid.UUID, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, planID)
	}
}

// size reports how many plans currently have a lock entry.
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
