// Package authz maps participant roles to the capabilities they may
// exercise. It is a pure lookup table: callers ask whether a capability is
// granted, they never branch on the role name itself (the single exception
// is the top-tier predicate gating deletion).
package authz

// Capability is one permitted action on the board.
type Capability string

const (
	CapabilitySubmit   Capability = "submit"
	CapabilityVote     Capability = "vote"
	CapabilityComment  Capability = "comment"
	CapabilityModerate Capability = "moderate"
	CapabilityConvert  Capability = "convert"
)

// Role names shipped by default. The table accepts additional roles
// without any engine change.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// CapabilitySet is the set of capabilities granted to a role.
type CapabilitySet map[Capability]bool

// Has reports whether the set grants the capability.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}

var roleTable = map[string]CapabilitySet{
	RoleEmployee: {
		CapabilitySubmit:  true,
		CapabilityVote:    true,
		CapabilityComment: true,
	},
	RoleManager: {
		CapabilitySubmit:   true,
		CapabilityVote:     true,
		CapabilityComment:  true,
		CapabilityModerate: true,
		CapabilityConvert:  true,
	},
	RoleAdmin: {
		CapabilitySubmit:   true,
		CapabilityVote:     true,
		CapabilityComment:  true,
		CapabilityModerate: true,
		CapabilityConvert:  true,
	},
}

// Roles returns the default role names in privilege order.
func Roles() []string {
	return []string{RoleEmployee, RoleManager, RoleAdmin}
}

// CapabilitiesFor returns the capability set for a role. Unknown roles
// degrade to the employee set, matching how the legacy board treated
// roles it did not recognize.
func CapabilitiesFor(role string) CapabilitySet {
	if set, ok := roleTable[role]; ok {
		return set
	}
	return roleTable[RoleEmployee]
}

// Can reports whether the role may exercise the capability.
func Can(role string, c Capability) bool {
	return CapabilitiesFor(role).Has(c)
}

// IsTopTier reports whether the role sits in the highest privilege tier.
// Deletion is reserved for it.
func IsTopTier(role string) bool {
	return role == RoleAdmin
}
