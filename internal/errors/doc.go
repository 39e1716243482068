// Package errors provides structured errors for paranormal-api.
//
// Errors carry a Code (mapped to a gRPC status), a user-facing
// message, an optional wrapped cause, free-form metadata and, for rules-engine
// failures, a domain Reason.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("name is required").WithMeta("field", "name")
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// # Domain Conditions
//
// The dice and inventory rules report four conditions. Each is a regular Error
// whose Reason distinguishes it from other errors with the same code:
//
//	InvalidDieSpec       INVALID_ARGUMENT     quantity < 1 or sides < 2
//	FormulaParseFailure  INVALID_ARGUMENT     notation is not QdS[+-M]
//	CapacityExceeded     FAILED_PRECONDITION  inventory would overflow
//	UnknownArchetype     INVALID_ARGUMENT     archetype outside the closed set
//
// Match them with the sentinels or the Is helpers:
//
//	if errors.Is(err, errors.ErrCapacityExceeded) { ... }
//	if errors.IsCapacityExceeded(err) { ... }
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("attributes.AGI", agi, 1, 5, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer Guidelines
//
// Repositories return NotFound/AlreadyExists with IDs in metadata and wrap
// storage errors. Orchestrators validate input (InvalidArgument), enforce
// preconditions (FailedPrecondition) and wrap repository errors with business
// context. Handlers convert with ToGRPCError; reasons and metadata ride along as
// an ErrorInfo detail and come back through FromGRPCError on the client side.
package errors
