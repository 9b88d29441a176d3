package proposal

// Status is the workflow state of a proposal. The intended flow is
// proposed -> reviewing -> approved -> in_project -> delivered, with
// rejected reachable from anywhere; moderation may set any value, the
// labels communicate the workflow rather than enforce it.
type Status string

const (
	StatusProposed  Status = "proposed"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusInProject Status = "in_project"
	StatusDelivered Status = "delivered"
	StatusRejected  Status = "rejected"
)

// AllStatuses returns every workflow state in display order.
func AllStatuses() []Status {
	return []Status{
		StatusProposed,
		StatusReviewing,
		StatusApproved,
		StatusInProject,
		StatusDelivered,
		StatusRejected,
	}
}

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusProposed, StatusReviewing, StatusApproved,
		StatusInProject, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
