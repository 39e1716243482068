package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorInfoDomain scopes the ErrorInfo details this service attaches to statuses
const ErrorInfoDomain = "paranormal-api"

// ToGRPCError converts an error to a gRPC status error. Reason and metadata
// travel as an errdetails.ErrorInfo detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if customErr.Reason != "" || len(customErr.Meta) > 0 {
			info := &errdetails.ErrorInfo{
				Reason:   string(customErr.Reason),
				Domain:   ErrorInfoDomain,
				Metadata: make(map[string]string, len(customErr.Meta)),
			}
			for k, v := range customErr.Meta {
				info.Metadata[k] = fmt.Sprint(v)
			}
			if detailed, detailErr := st.WithDetails(info); detailErr == nil {
				st = detailed
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorInfoDomain {
			continue
		}
		customErr.Reason = Reason(info.GetReason())
		if len(info.GetMetadata()) > 0 {
			customErr.Meta = make(map[string]interface{}, len(info.GetMetadata()))
			for k, v := range info.GetMetadata() {
				customErr.Meta[k] = v
			}
		}
		break
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if As(err, &customErr) {
		return status.New(customErr.Code.GRPCCode(), customErr.Message)
	}

	return status.New(codes.Internal, err.Error())
}
