package domain

// Role represents a user role in the system.
// The set is closed: roles are assigned once and never extended at runtime.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTrainer       Role = "trainer"
)

// IsValid reports whether r is one of the known role tags.
func (r Role) IsValid() bool {
	return r == RoleAdministrator || r == RoleTrainer
}

// Membership status values. The status column is an open string tag:
// these are the conventional values, but nothing in the core enforces
// the set or transitions between them — status is caller-set.
const (
	MembershipStatusActive    = "active"
	MembershipStatusExpired   = "expired"
	MembershipStatusCancelled = "cancelled"
)

// Workout plan difficulty levels (convention, not enforced).
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)
