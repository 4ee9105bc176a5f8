package models

// ErrorKind classifies a failed request on the wire. The set is closed: a
// client seeing an unknown value must treat it as KindInternal.
type ErrorKind int32

const (
	// KindSerialization: the request body could not be decoded.
	KindSerialization ErrorKind = 1
	// KindImport: the transaction could not be located or imported.
	KindImport ErrorKind = 2
	// KindControl: the lifecycle operation itself failed.
	KindControl ErrorKind = 3
	// KindInternal: any other failure.
	KindInternal ErrorKind = 4
)

func (k ErrorKind) String() string {
	switch k {
	case KindSerialization:
		return "serialization"
	case KindImport:
		return "import"
	case KindControl:
		return "control"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ErrorRecord is the body of a failed response, serialized under
// ExceptionContentType.
type ErrorRecord struct {
	Kind    ErrorKind
	Message string
}
