package compose

// ConsistencyFault indicates a selection that references content which does
// not exist in the candidate profile it was supposedly built from.
type ConsistencyFault struct {
	Message string
	Cause   error
}

func (e *ConsistencyFault) Error() string {
	if e.Cause != nil {
		return "compose: " + e.Message + ": " + e.Cause.Error()
	}
	return "compose: " + e.Message
}

func (e *ConsistencyFault) Unwrap() error {
	return e.Cause
}
