package memstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/infra"
	"floorplan-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// FloorPlanStore keeps plans in process memory. Every read and write goes
// through a clone so callers never share state with the store.
type FloorPlanStore struct {
	mu      sync.RWMutex
	plans   map[uuid.UUID]*floorplan.FloorPlan
	order   []uuid.UUID
	slogger *slog.Logger
}

func NewFloorPlanStore(slogger *slog.Logger) *FloorPlanStore {
	return &FloorPlanStore{
		plans:   make(map[uuid.UUID]*floorplan.FloorPlan),
		slogger: slogger,
	}
}

var _ shared.FloorPlanRepository = (*FloorPlanStore)(nil)

func (s *FloorPlanStore) FindByID(ctx context.Context, id uuid.UUID) (*floorplan.FloorPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.slogger, infra.KindNotFound, "floor plan not found", nil)
	}
	return p.Clone(), nil
}

func (s *FloorPlanStore) List(ctx context.Context) ([]*floorplan.FloorPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*floorplan.FloorPlan, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.plans[id].Clone())
	}
	return out, nil
}

func (s *FloorPlanStore) ListByBookedUser(ctx context.Context, userID uuid.UUID) ([]*floorplan.FloorPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*floorplan.FloorPlan
	for _, id := range s.order {
		p := s.plans[id]
		if slices.ContainsFunc(p.Rooms, func(r floorplan.Room) bool { return r.IsBookedBy(userID) }) {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

func (s *FloorPlanStore) Create(ctx context.Context, plan *floorplan.FloorPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.plans[plan.ID]; exists {
		return infra.WrapRepoErr(s.slogger, infra.KindDuplicateKey, "floor plan already exists", nil)
	}
	s.plans[plan.ID] = plan.Clone()
	s.order = append(s.order, plan.ID)
	return nil
}

func (s *FloorPlanStore) Replace(ctx context.Context, plan *floorplan.FloorPlan, expectedVersion int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.plans[plan.ID]
	if !ok {
		return infra.WrapRepoErr(s.slogger, infra.KindNotFound, "floor plan not found", nil)
	}
	if current.Version != expectedVersion {
		return infra.WrapRepoErr(s.slogger, infra.KindVersionMismatch, "floor plan version moved", nil)
	}
	s.plans[plan.ID] = plan.Clone()
	return nil
}

func (s *FloorPlanStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[id]; !ok {
		return infra.WrapRepoErr(s.slogger, infra.KindNotFound, "floor plan not found", nil)
	}
	delete(s.plans, id)
	s.order = slices.DeleteFunc(s.order, func(x uuid.UUID) bool { return x == id })
	return nil
}
