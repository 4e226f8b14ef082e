package retrograde

// State is the request lifecycle of a single controller mount.
// Exactly one of Loading, Failed or Resolved is observable at a time.
type State interface {
	isState()
}

// Loading is the initial state; the status request has not settled yet.
type Loading struct{}

// Failed is the terminal state for a request that could not be completed.
type Failed struct {
	Message string
}

// Resolved is the terminal state for a request that returned a usable payload.
type Resolved struct {
	// Retrograde is nil when the payload carried no boolean signal.
	// A nil value means "unknown", which is not the same as false.
	Retrograde *bool
	Meta       Meta
}

func (Loading) isState()  {}
func (Failed) isState()   {}
func (Resolved) isState() {}

// Meta carries the supporting details of a resolved status.
// Empty strings mean the field was absent upstream.
type Meta struct {
	Sign        string `json:"sign,omitempty"        yaml:"sign,omitempty"`
	Date        string `json:"date,omitempty"        yaml:"date,omitempty"`
	PeriodStart string `json:"period_start,omitempty" yaml:"period_start,omitempty"`
	PeriodEnd   string `json:"period_end,omitempty"   yaml:"period_end,omitempty"`
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Loading    bool    `json:"loading"`
	Error      *string `json:"error"`
	Retrograde *bool   `json:"retrograde"`
	Meta       *Meta   `json:"meta"`
}

// SnapshotOf converts a State into the flat presentation snapshot.
func SnapshotOf(state State) Snapshot {
	switch s := state.(type) {
	case Failed:
		msg := s.Message
		return Snapshot{Error: &msg}
	case Resolved:
		meta := s.Meta
		return Snapshot{Retrograde: copyBool(s.Retrograde), Meta: &meta}
	default:
		return Snapshot{Loading: true}
	}
}

// IsTerminal reports whether state ends the request lifecycle.
func IsTerminal(state State) bool {
	switch state.(type) {
	case Failed, Resolved:
		return true
	default:
		return false
	}
}

// Bool returns a pointer to v. It is a convenience for building Resolved values.
func Bool(v bool) *bool {
	return &v
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
