package errors

// Reason identifies a domain condition within a code.
type Reason string

// Domain reasons raised by the rules engine and the inventory accountant.
const (
	ReasonInvalidDieSpec      Reason = "INVALID_DIE_SPEC"
	ReasonFormulaParseFailure Reason = "FORMULA_PARSE_FAILURE"
	ReasonCapacityExceeded    Reason = "CAPACITY_EXCEEDED"
	ReasonUnknownArchetype    Reason = "UNKNOWN_ARCHETYPE"
)

// Sentinels for errors.Is checks against domain conditions.
var (
	ErrInvalidDieSpec      = &Error{Code: CodeInvalidArgument, Reason: ReasonInvalidDieSpec}
	ErrFormulaParseFailure = &Error{Code: CodeInvalidArgument, Reason: ReasonFormulaParseFailure}
	ErrCapacityExceeded    = &Error{Code: CodeFailedPrecondition, Reason: ReasonCapacityExceeded}
	ErrUnknownArchetype    = &Error{Code: CodeInvalidArgument, Reason: ReasonUnknownArchetype}
)

// InvalidDieSpec reports a die quantity below 1 or fewer than 2 sides.
func InvalidDieSpec(quantity, sides int) *Error {
	return InvalidArgumentf("invalid die spec %dd%d: quantity or sides out of range", quantity, sides).
		WithReason(ReasonInvalidDieSpec).
		WithMeta("quantity", quantity).
		WithMeta("sides", sides)
}

// FormulaParseFailure reports dice notation that does not match QdS[+-M].
func FormulaParseFailure(formula string) *Error {
	return InvalidArgumentf("invalid dice formula %q (expected format: QdS, QdS+M or QdS-M)", formula).
		WithReason(ReasonFormulaParseFailure).
		WithMeta("formula", formula)
}

// CapacityExceeded reports an inventory mutation that would overflow capacity.
func CapacityExceeded(capacity, required int) *Error {
	return FailedPreconditionf("inventory needs %d space but capacity is %d", required, capacity).
		WithReason(ReasonCapacityExceeded).
		WithMeta("capacity", capacity).
		WithMeta("required", required)
}

// UnknownArchetype reports an archetype outside the closed set.
func UnknownArchetype(value string) *Error {
	return InvalidArgumentf("unknown archetype %q", value).
		WithReason(ReasonUnknownArchetype).
		WithMeta("archetype", value)
}

// IsInvalidDieSpec reports whether any error in the chain carries ReasonInvalidDieSpec
func IsInvalidDieSpec(err error) bool {
	return Is(err, ErrInvalidDieSpec)
}

// IsFormulaParseFailure checks for ReasonFormulaParseFailure
func IsFormulaParseFailure(err error) bool {
	return Is(err, ErrFormulaParseFailure)
}

// IsCapacityExceeded checks for ReasonCapacityExceeded
func IsCapacityExceeded(err error) bool {
	return Is(err, ErrCapacityExceeded)
}

// IsUnknownArchetype checks for ReasonUnknownArchetype
func IsUnknownArchetype(err error) bool {
	return Is(err, ErrUnknownArchetype)
}
