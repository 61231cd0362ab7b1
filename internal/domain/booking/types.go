package booking

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitionTable[s]) == 0
}

// TransitionRule is one edge of the lifecycle state machine together with its
// caller-facing metadata. The allowed-edge relation and the metadata come from
// the same table so they cannot drift apart.
type TransitionRule struct {
	To             Status
	RequiresReason bool
	DisplayName    string
	Description    string
}

var transitionTable = map[Status][]TransitionRule{
	StatusPending: {
		{To: StatusConfirmed, DisplayName: "Confirm", Description: "Confirm the appointment with the customer"},
		{To: StatusCancelled, RequiresReason: true, DisplayName: "Cancel", Description: "Cancel the appointment before it is confirmed"},
	},
	StatusConfirmed: {
		{To: StatusCompleted, DisplayName: "Complete", Description: "Mark the appointment as carried out"},
		{To: StatusCancelled, RequiresReason: true, DisplayName: "Cancel", Description: "Cancel a confirmed appointment"},
		{To: StatusNoShow, DisplayName: "No-show", Description: "Customer did not attend the appointment"},
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusNoShow:    {},
}

// AllowedTransitions returns the outgoing edges for a status, in table order.
func AllowedTransitions(from Status) []TransitionRule {
	rules := transitionTable[from]
	out := make([]TransitionRule, len(rules))
	copy(out, rules)
	return out
}

// RuleFor looks up the edge from -> to; ok is false when the edge is not in
// the table.
func RuleFor(from, to Status) (TransitionRule, bool) {
	for _, r := range transitionTable[from] {
		if r.To == to {
			return r, true
		}
	}
	return TransitionRule{}, false
}

func CanTransition(from, to Status) bool {
	_, ok := RuleFor(from, to)
	return ok
}
