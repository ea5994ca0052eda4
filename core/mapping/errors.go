package mapping

import "fmt"

// FieldCoercionError reports a caller value that could not be converted to
// the destination type of a field.
type FieldCoercionError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldCoercionError) Error() string {
	return fmt.Sprintf("field %s: cannot use %q: %v", e.Field, fmt.Sprint(e.Value), e.Err)
}

func (e *FieldCoercionError) Unwrap() error {
	return e.Err
}
