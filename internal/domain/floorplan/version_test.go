//go:build unit

package floorplan_test

import (
	"testing"

	"floorplan-service/internal/domain/floorplan"
	"floorplan-service/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndBump(t *testing.T) {
	current := &floorplan.FloorPlan{Name: "p", Version: 3}

	tests := []struct {
		name     string
		caller   *int
		policy   floorplan.ConflictPolicy
		want     int
		conflict bool
	}{
		{name: "absent version", caller: nil, policy: floorplan.PolicyLenient, want: 4},
		{name: "matching version", caller: ptr.To(3), policy: floorplan.PolicyLenient, want: 4},
		{name: "stale version", caller: ptr.To(2), policy: floorplan.PolicyLenient, conflict: true},
		{name: "ahead of server is accepted leniently", caller: ptr.To(9), policy: floorplan.PolicyLenient, want: 4},
		{name: "strict accepts exact match", caller: ptr.To(3), policy: floorplan.PolicyStrict, want: 4},
		{name: "strict rejects ahead", caller: ptr.To(9), policy: floorplan.PolicyStrict, conflict: true},
		{name: "strict rejects stale", caller: ptr.To(1), policy: floorplan.PolicyStrict, conflict: true},
		{name: "strict without version", caller: nil, policy: floorplan.PolicyStrict, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := floorplan.CheckAndBump(current, tt.caller, tt.policy)
			if tt.conflict {
				var cerr *floorplan.ConflictError
				require.ErrorAs(t, err, &cerr)
				require.ErrorIs(t, err, floorplan.ErrVersionConflict)
				assert.Equal(t, 3, cerr.CurrentVersion)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, next)
			}
			assert.Equal(t, 3, current.Version)
		})
	}
}

func TestParseConflictPolicy(t *testing.T) {
	p, err := floorplan.ParseConflictPolicy("")
	require.NoError(t, err)
	assert.Equal(t, floorplan.PolicyLenient, p)

	p, err = floorplan.ParseConflictPolicy("strict")
	require.NoError(t, err)
	assert.Equal(t, floorplan.PolicyStrict, p)

	_, err = floorplan.ParseConflictPolicy("optimistic")
	assert.Error(t, err)
}
