package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPermissions(t *testing.T) {
	p := DefaultPermissions()
	assert.True(t, p.Has(PermViewDashboard))
	assert.False(t, p.Has(PermViewReservations))
	assert.False(t, p.Has(PermEditUsers))
}

func TestAllPermissionsGrantsEverything(t *testing.T) {
	p := AllPermissions()
	for _, perm := range []Permission{
		PermViewDashboard,
		PermViewReservations, PermEditReservations, PermDeleteReservations,
		PermViewCustomers, PermEditCustomers,
		PermViewTrips, PermEditTrips,
		PermViewVisas, PermEditVisas,
		PermViewOperations, PermEditOperations,
		PermViewContracts, PermEditContracts,
		PermViewAccounting, PermEditAccounting,
		PermViewUsers, PermEditUsers, PermDeleteUsers,
		PermViewRoles, PermEditRoles,
		PermViewReports,
		PermViewSettings, PermEditSettings,
	} {
		assert.True(t, p.Has(perm), "expected %s to be granted", perm)
	}
}

func TestViewOnlyPermissions(t *testing.T) {
	p := ViewOnlyPermissions()
	assert.True(t, p.Has(PermViewReservations))
	assert.True(t, p.Has(PermViewAccounting))
	assert.False(t, p.Has(PermEditReservations))
	assert.False(t, p.Has(PermDeleteReservations))
	assert.False(t, p.Has(PermEditUsers))
}

func TestHasUnknownPermission(t *testing.T) {
	p := AllPermissions()
	assert.False(t, p.Has(Permission("becomeRoot")))
}

func TestPermissionSetUnmarshalDropsUnknownKeys(t *testing.T) {
	raw := `{"viewDashboard":true,"editReservations":true,"becomeRoot":true}`

	var p PermissionSet
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.True(t, p.ViewDashboard)
	assert.True(t, p.EditReservations)
	assert.False(t, p.Has(Permission("becomeRoot")))
}

func TestPermissionSetUnmarshalMissingKeysZero(t *testing.T) {
	var p PermissionSet
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.Has(PermViewDashboard))
	assert.False(t, p.Has(PermEditReservations))
}
