package resolve

import "fmt"

// UnsupportedOperationError reports that a required capability could not be
// located on a type: no matching method, or a method with the wrong arity or
// parameter shape after conversions were attempted. The failure is fatal for
// that type; resolution is deterministic, so retrying cannot change the
// outcome.
type UnsupportedOperationError struct {
	TypeName  string
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation %q for type %s", e.Operation, e.TypeName)
}

// NotImplementedError reports an operation that is deliberately supported
// only for primitive types. Fatal for the type, like
// UnsupportedOperationError.
type NotImplementedError struct {
	TypeName  string
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("operation %q is only implemented for primitive types, not %s", e.Operation, e.TypeName)
}

func unsupported(typeName, op string) error {
	return &UnsupportedOperationError{TypeName: typeName, Operation: op}
}

func notImplemented(typeName, op string) error {
	return &NotImplementedError{TypeName: typeName, Operation: op}
}
