package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		role       string
		capability Capability
		allowed    bool
	}{
		{RoleEmployee, CapabilitySubmit, true},
		{RoleEmployee, CapabilityVote, true},
		{RoleEmployee, CapabilityComment, true},
		{RoleEmployee, CapabilityModerate, false},
		{RoleEmployee, CapabilityConvert, false},
		{RoleManager, CapabilityModerate, true},
		{RoleManager, CapabilityConvert, true},
		{RoleAdmin, CapabilityModerate, true},
		{RoleAdmin, CapabilityConvert, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, Can(tc.role, tc.capability),
			"role %s capability %s", tc.role, tc.capability)
	}
}

func TestUnknownRoleDegradesToEmployee(t *testing.T) {
	assert.True(t, Can("contractor", CapabilitySubmit))
	assert.True(t, Can("contractor", CapabilityVote))
	assert.False(t, Can("contractor", CapabilityModerate))
	assert.False(t, Can("contractor", CapabilityConvert))
}

func TestIsTopTier(t *testing.T) {
	assert.True(t, IsTopTier(RoleAdmin))
	assert.False(t, IsTopTier(RoleManager))
	assert.False(t, IsTopTier(RoleEmployee))
	assert.False(t, IsTopTier("contractor"))
}
