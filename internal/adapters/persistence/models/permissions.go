package models

// Permission names a single grantable action. The set is closed: every
// permission the API checks is listed here and has a matching field on
// PermissionSet.
type Permission string

const (
	// Dashboard
	PermViewDashboard Permission = "viewDashboard"

	// Reservations
	PermViewReservations   Permission = "viewReservations"
	PermEditReservations   Permission = "editReservations"
	PermDeleteReservations Permission = "deleteReservations"

	// Customers
	PermViewCustomers Permission = "viewCustomers"
	PermEditCustomers Permission = "editCustomers"

	// Trips
	PermViewTrips Permission = "viewTrips"
	PermEditTrips Permission = "editTrips"

	// Visas
	PermViewVisas Permission = "viewVisas"
	PermEditVisas Permission = "editVisas"

	// Operations (bags, balloons, airport transfers)
	PermViewOperations Permission = "viewOperations"
	PermEditOperations Permission = "editOperations"

	// Contracts (hotel contracts, packages, itineraries, guide schedules)
	PermViewContracts Permission = "viewContracts"
	PermEditContracts Permission = "editContracts"

	// Accounting (accounts, transactions, safes, banks)
	PermViewAccounting Permission = "viewAccounting"
	PermEditAccounting Permission = "editAccounting"

	// Users
	PermViewUsers   Permission = "viewUsers"
	PermEditUsers   Permission = "editUsers"
	PermDeleteUsers Permission = "deleteUsers"

	// Roles
	PermViewRoles Permission = "viewRoles"
	PermEditRoles Permission = "editRoles"

	// Reports
	PermViewReports Permission = "viewReports"

	// Settings
	PermViewSettings Permission = "viewSettings"
	PermEditSettings Permission = "editSettings"
)

// PermissionSet is the fixed bundle of permission flags carried by a role.
// It is stored as a single JSON column; unknown keys in client input are
// dropped during unmarshalling and missing keys zero to false.
type PermissionSet struct {
	ViewDashboard bool `json:"viewDashboard"`

	ViewReservations   bool `json:"viewReservations"`
	EditReservations   bool `json:"editReservations"`
	DeleteReservations bool `json:"deleteReservations"`

	ViewCustomers bool `json:"viewCustomers"`
	EditCustomers bool `json:"editCustomers"`

	ViewTrips bool `json:"viewTrips"`
	EditTrips bool `json:"editTrips"`

	ViewVisas bool `json:"viewVisas"`
	EditVisas bool `json:"editVisas"`

	ViewOperations bool `json:"viewOperations"`
	EditOperations bool `json:"editOperations"`

	ViewContracts bool `json:"viewContracts"`
	EditContracts bool `json:"editContracts"`

	ViewAccounting bool `json:"viewAccounting"`
	EditAccounting bool `json:"editAccounting"`

	ViewUsers   bool `json:"viewUsers"`
	EditUsers   bool `json:"editUsers"`
	DeleteUsers bool `json:"deleteUsers"`

	ViewRoles bool `json:"viewRoles"`
	EditRoles bool `json:"editRoles"`

	ViewReports bool `json:"viewReports"`

	ViewSettings bool `json:"viewSettings"`
	EditSettings bool `json:"editSettings"`
}

// Has reports whether the named permission is granted. The switch is
// exhaustive over the Permission constants; an unknown name is never granted.
func (p PermissionSet) Has(perm Permission) bool {
	switch perm {
	case PermViewDashboard:
		return p.ViewDashboard
	case PermViewReservations:
		return p.ViewReservations
	case PermEditReservations:
		return p.EditReservations
	case PermDeleteReservations:
		return p.DeleteReservations
	case PermViewCustomers:
		return p.ViewCustomers
	case PermEditCustomers:
		return p.EditCustomers
	case PermViewTrips:
		return p.ViewTrips
	case PermEditTrips:
		return p.EditTrips
	case PermViewVisas:
		return p.ViewVisas
	case PermEditVisas:
		return p.EditVisas
	case PermViewOperations:
		return p.ViewOperations
	case PermEditOperations:
		return p.EditOperations
	case PermViewContracts:
		return p.ViewContracts
	case PermEditContracts:
		return p.EditContracts
	case PermViewAccounting:
		return p.ViewAccounting
	case PermEditAccounting:
		return p.EditAccounting
	case PermViewUsers:
		return p.ViewUsers
	case PermEditUsers:
		return p.EditUsers
	case PermDeleteUsers:
		return p.DeleteUsers
	case PermViewRoles:
		return p.ViewRoles
	case PermEditRoles:
		return p.EditRoles
	case PermViewReports:
		return p.ViewReports
	case PermViewSettings:
		return p.ViewSettings
	case PermEditSettings:
		return p.EditSettings
	default:
		return false
	}
}

// DefaultPermissions returns the flags a new role starts with.
// Every flag is false except viewDashboard.
func DefaultPermissions() PermissionSet {
	return PermissionSet{ViewDashboard: true}
}

// AllPermissions returns a fully granted set (built-in admin role).
func AllPermissions() PermissionSet {
	return PermissionSet{
		ViewDashboard:      true,
		ViewReservations:   true,
		EditReservations:   true,
		DeleteReservations: true,
		ViewCustomers:      true,
		EditCustomers:      true,
		ViewTrips:          true,
		EditTrips:          true,
		ViewVisas:          true,
		EditVisas:          true,
		ViewOperations:     true,
		EditOperations:     true,
		ViewContracts:      true,
		EditContracts:      true,
		ViewAccounting:     true,
		EditAccounting:     true,
		ViewUsers:          true,
		EditUsers:          true,
		DeleteUsers:        true,
		ViewRoles:          true,
		EditRoles:          true,
		ViewReports:        true,
		ViewSettings:       true,
		EditSettings:       true,
	}
}

// ViewOnlyPermissions returns the read-only set (built-in viewer role).
func ViewOnlyPermissions() PermissionSet {
	return PermissionSet{
		ViewDashboard:    true,
		ViewReservations: true,
		ViewCustomers:    true,
		ViewTrips:        true,
		ViewVisas:        true,
		ViewOperations:   true,
		ViewContracts:    true,
		ViewAccounting:   true,
		ViewReports:      true,
		ViewSettings:     true,
	}
}
