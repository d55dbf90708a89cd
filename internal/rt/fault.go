package rt

import "fmt"

// FaultCode identifies the class of a runtime fault.
type FaultCode int

// Stable fault codes - do not change values.
const (
	FaultNilOperand     FaultCode = 1001 // RT1001: nil/absent operand
	FaultShapeMismatch  FaultCode = 1002 // RT1002: matrix dimension mismatch
	FaultDivisionByZero FaultCode = 1003 // RT1003: zero divisor
	FaultNonSquare      FaultCode = 1004 // RT1004: square matrix required
	FaultOutOfBounds    FaultCode = 1005 // RT1005: element index out of bounds
	FaultSolverFailure  FaultCode = 1006 // RT1006: eigensolver failure
	FaultInvalidHandle  FaultCode = 1007 // RT1007: invalid handle
	FaultUseAfterFree   FaultCode = 1008 // RT1008: value used after destruction
	FaultDoubleRelease  FaultCode = 1009 // RT1009: release of a dead value
	FaultExtentOverflow FaultCode = 1010 // RT1010: matrix extent overflow
	FaultSingular       FaultCode = 1011 // RT1011: singular matrix (recoverable)
	FaultHeapLeak       FaultCode = 1012 // RT1012: live objects at shutdown
	FaultTypeMismatch   FaultCode = 1013 // RT1013: wrong value type for operation
)

// String returns the code as "RT1001" format.
func (c FaultCode) String() string {
	return fmt.Sprintf("RT%d", c)
}

// Error is the runtime's fault value. All fatal paths panic with an *Error;
// the one recoverable operation (matrix inverse) returns it instead. The
// driver boundary recovers, prints the diagnostic and terminates.
type Error struct {
	Code    FaultCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fault %s: %s", e.Code, e.Message)
}

// fault constructs an *Error without raising it.
func fault(code FaultCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// fatal raises a fault. There is no recovery inside the runtime itself.
func fatal(code FaultCode, format string, args ...any) {
	panic(fault(code, format, args...))
}

func fatalNilOperand(op string) {
	fatal(FaultNilOperand, "%s: nil operand", op)
}

func fatalShape(op string, ar, ac, br, bc int) {
	fatal(FaultShapeMismatch, "%s: dimension mismatch: %dx%d vs %dx%d", op, ar, ac, br, bc)
}

func fatalDivZero(op string) {
	fatal(FaultDivisionByZero, "%s: division by zero", op)
}

func fatalNonSquare(op string, rows, cols int) {
	fatal(FaultNonSquare, "%s: square matrix required, got %dx%d", op, rows, cols)
}
