package lifecycle

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from State
		ev   Event
		want State
	}{
		{StateActive, EventMarkDeleted, StateSoftDeleted},
		{StateSoftDeleted, EventMarkUndeleted, StateActive},
		{StateSoftDeleted, EventMarkDeleted, StateSoftDeleted},
		{StateActive, EventMarkUndeleted, StateActive},
		{StateSoftDeleted, EventPurge, StatePurged},
		{StateActive, EventPurge, StateInvalid},
		{StatePurged, EventMarkUndeleted, StateInvalid},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.ev), func(t *testing.T) {
			if got := Transition(tt.from, tt.ev); got != tt.want {
				t.Errorf("Transition(%q, %q) = %q, want %q", tt.from, tt.ev, got, tt.want)
			}
		})
	}
}

func TestStateOf(t *testing.T) {
	if StateOf(true) != StateSoftDeleted {
		t.Errorf("StateOf(true) = %q, want %q", StateOf(true), StateSoftDeleted)
	}
	if StateOf(false) != StateActive {
		t.Errorf("StateOf(false) = %q, want %q", StateOf(false), StateActive)
	}
	if InitialState().IsDeleted() {
		t.Error("expected new records to start active")
	}
	if !Transition(StateActive, EventForStatus(true)).IsDeleted() {
		t.Error("expected EventForStatus(true) to mark the record deleted")
	}
}
