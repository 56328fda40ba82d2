package floorplan

import "fmt"

const InitialVersion = 1

// ConflictPolicy decides when a caller-supplied version counts as stale.
type ConflictPolicy string

const (
	// PolicyLenient rejects only callers strictly behind the current version.
	PolicyLenient ConflictPolicy = "lenient"
	// PolicyStrict rejects any caller whose version differs from the current one.
	PolicyStrict ConflictPolicy = "strict"
)

func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(s); p {
	case PolicyLenient, PolicyStrict:
		return p, nil
	case "":
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("unknown conflict policy %q", s)
	}
}

// CheckAndBump returns the version a mutation of current will carry. A nil
// callerVersion means the caller opted out of the check. It never mutates current.
func CheckAndBump(current *FloorPlan, callerVersion *int, policy ConflictPolicy) (int, error) {
	if callerVersion != nil && policy.isStale(*callerVersion, current.Version) {
		return 0, &ConflictError{CurrentVersion: current.Version}
	}
	return current.Version + 1, nil
}

func (p ConflictPolicy) isStale(caller, current int) bool {
	if p == PolicyStrict {
		return caller != current
	}
	return caller < current
}
