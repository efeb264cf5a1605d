package session

import "clinic-scheduler/internal/model"

type DenyReason int

const (
	DenyNone DenyReason = iota
	DenyUnauthenticated
	DenyWrongRole
)

func (r DenyReason) String() string {
	switch r {
	case DenyNone:
		return "none"
	case DenyUnauthenticated:
		return "unauthenticated"
	case DenyWrongRole:
		return "wrong role"
	}
	return "unknown"
}

// Decision is the outcome of a gate check. Message is meant for the user and
// may be empty.
type Decision struct {
	Allowed bool
	Reason  DenyReason
	Message string
}

var allow = Decision{Allowed: true}

func RequireAuthenticated(id Identity) Decision {
	if !id.Authenticated() {
		return Decision{Reason: DenyUnauthenticated}
	}
	return allow
}

// RequireRole denies anonymous callers as unauthenticated and authenticated
// callers of another role as wrong role.
func RequireRole(id Identity, role model.Role) Decision {
	if d := RequireAuthenticated(id); !d.Allowed {
		return d
	}
	if id.Role != role {
		return Decision{Reason: DenyWrongRole, Message: roleMessage(role)}
	}
	return allow
}

func roleMessage(role model.Role) string {
	switch role {
	case model.RoleDoctor:
		return "Doctor access only"
	case model.RolePatient:
		return "Patient access only"
	}
	return "Access denied"
}
