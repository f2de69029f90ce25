package lifecycle

// State is the soft-delete state of a hive or section.
type State string

const (
	StateActive      State = "active"
	StateSoftDeleted State = "deleted"
	StatePurged      State = "purged"
	StateInvalid     State = ""
)

// Event drives a State transition.
type Event string

const (
	EventMarkDeleted   Event = "mark_deleted"
	EventMarkUndeleted Event = "mark_undeleted"
	EventPurge         Event = "purge"
)

// StateOf maps the stored IsDeleted flag to a State.
func StateOf(isDeleted bool) State {
	if isDeleted {
		return StateSoftDeleted
	}
	return StateActive
}

// InitialState returns the state of a newly created record.
func InitialState() State {
	return StateActive
}

// EventForStatus returns the event that sets IsDeleted to the given value.
func EventForStatus(isDeleted bool) Event {
	if isDeleted {
		return EventMarkDeleted
	}
	return EventMarkUndeleted
}

// Transition returns the state reached by applying ev to from, or StateInvalid.
// Status events are idempotent: marking a deleted record deleted leaves it deleted.
func Transition(from State, ev Event) State {
	switch from {
	case StateActive, StateSoftDeleted:
	default:
		return StateInvalid
	}

	switch ev {
	case EventMarkDeleted:
		return StateSoftDeleted
	case EventMarkUndeleted:
		return StateActive
	case EventPurge:
		if from == StateSoftDeleted {
			return StatePurged
		}
	}
	return StateInvalid
}

// IsDeleted reports the IsDeleted flag stored for s.
func (s State) IsDeleted() bool {
	return s == StateSoftDeleted
}
