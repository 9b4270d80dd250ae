package profiles

// Status is the onboarding stage of a profile.
type Status string

// Onboarding stages in pipeline order.
const (
	StatusPendingNDA      Status = "pending_nda"
	StatusPendingBooking  Status = "pending_booking"
	StatusPendingApproval Status = "pending_approval"
	StatusPendingContract Status = "pending_contract"
	StatusActive          Status = "active"
	StatusRejected        Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusPendingNDA:      {StatusPendingBooking},
	StatusPendingBooking:  {StatusPendingApproval},
	StatusPendingApproval: {StatusPendingContract, StatusRejected, StatusPendingBooking},
	StatusPendingContract: {StatusActive},
}

// Statuses lists every known status.
func Statuses() []Status {
	return []Status{
		StatusPendingNDA,
		StatusPendingBooking,
		StatusPendingApproval,
		StatusPendingContract,
		StatusActive,
		StatusRejected,
	}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// CanTransition reports whether a profile in s may move to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Role distinguishes members from staff.
type Role string

// Roles
const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)
