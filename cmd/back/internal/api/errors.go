package api

import (
	"errors"

	"rizoma/cmd/back/internal/app"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const errorDomain = "rizoma.recordstore"

const (
	reasonMissingSignature = "MISSING_SIGNATURE"
	reasonInvalidAddress   = "INVALID_ADDRESS"
	reasonInsufficientFund = "INSUFFICIENT_FUNDS"
	reasonAccountInUse     = "ACCOUNT_IN_USE"
	reasonDidNotSerialize  = "ACCOUNT_DID_NOT_SERIALIZE"
	reasonNotOwned         = "ACCOUNT_NOT_OWNED"
	reasonNotFound         = "ACCOUNT_NOT_FOUND"
	reasonInternal         = "INTERNAL"
)

func reason(err error) string {
	switch {
	case errors.Is(err, app.ErrMissingSignature):
		return reasonMissingSignature
	case errors.Is(err, app.ErrInsufficientFunds):
		return reasonInsufficientFund
	case errors.Is(err, app.ErrAccountInUse):
		return reasonAccountInUse
	case errors.Is(err, app.ErrAccountDidNotSerialize):
		return reasonDidNotSerialize
	case errors.Is(err, app.ErrAccountNotOwned):
		return reasonNotOwned
	case errors.Is(err, app.ErrAccountNotFound):
		return reasonNotFound
	default:
		return reasonInternal
	}
}

// toStatus maps ledger and program errors onto gRPC codes with an ErrorInfo detail.
func toStatus(err error) *status.Status {
	var code codes.Code
	msg := err.Error()
	switch reason(err) {
	case reasonMissingSignature:
		code = codes.Unauthenticated
	case reasonInsufficientFund, reasonNotOwned:
		code = codes.FailedPrecondition
	case reasonAccountInUse:
		code = codes.AlreadyExists
	case reasonDidNotSerialize:
		return fieldViolation("text", err)
	case reasonNotFound:
		code = codes.NotFound
	default:
		code = codes.Internal
		msg = "internal error"
	}

	st := status.New(code, msg)
	if code == codes.Internal {
		return st
	}
	detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason(err),
		Domain: errorDomain,
	})
	if derr != nil {
		return st
	}
	return detailed
}

func invalidArgument(field string, err error) error {
	return fieldViolation(field, err).Err()
}

func fieldViolation(field string, err error) *status.Status {
	st := status.New(codes.InvalidArgument, err.Error())
	detailed, derr := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: field, Description: err.Error()},
		},
	})
	if derr != nil {
		return st
	}
	return detailed
}
