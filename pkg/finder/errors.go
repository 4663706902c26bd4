package finder

// NotFoundError reports that no zone satisfies a discovery requirement:
// either the machine type is offered nowhere, or no zone offers the GPU type
// with enough per-instance capacity.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}
