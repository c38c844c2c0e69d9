package domain

// TransitionPolicy decides whether an order may move from one status to another.
type TransitionPolicy interface {
	Allows(from, to OrderStatus) bool
}

// TransitionTable lists the allowed target statuses per source status.
// Re-assigning the current status is always allowed.
type TransitionTable map[OrderStatus][]OrderStatus

func (t TransitionTable) Allows(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PermissiveTransitions allows any status to move to any other status.
var PermissiveTransitions = func() TransitionTable {
	t := make(TransitionTable, len(OrderStatuses))
	for _, from := range OrderStatuses {
		t[from] = append([]OrderStatus(nil), OrderStatuses...)
	}
	return t
}()

// StrictTransitions makes COMPLETED and CANCELLED terminal.
var StrictTransitions = TransitionTable{
	StatusPending:    {StatusInProgress, StatusReview, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusPending, StatusReview, StatusCompleted, StatusCancelled},
	StatusReview:     {StatusPending, StatusInProgress, StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}
