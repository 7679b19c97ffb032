package api

import (
	"context"
	"fmt"
	"strings"

	pb "rizoma/api/proto/v1"
	"rizoma/internal/auth"
	"rizoma/internal/keys"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const (
	SignerKey       contextKey = "signer"
	ClaimsKey       contextKey = "claims"
	RecordSignerKey contextKey = "record_signer"
	RecordClaimsKey contextKey = "record_claims"
)

// AuthInterceptor verifies the EdDSA tokens of the payer and of the record
// keypair on every method that moves funds.
func AuthInterceptor(programID string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "metadata is not provided")
		}

		claims, signer, err := verifyHeader(md, auth.Header, programID)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, fmt.Sprintf("signer: %v", err))
		}
		recordClaims, recordSigner, err := verifyHeader(md, auth.RecordHeader, programID)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, fmt.Sprintf("record: %v", err))
		}

		ctx = context.WithValue(ctx, SignerKey, signer)
		ctx = context.WithValue(ctx, ClaimsKey, claims)
		ctx = context.WithValue(ctx, RecordSignerKey, recordSigner)
		ctx = context.WithValue(ctx, RecordClaimsKey, recordClaims)

		return handler(ctx, req)
	}
}

func verifyHeader(md metadata.MD, header, programID string) (*auth.Claims, keys.PublicKey, error) {
	values := md[header]
	if len(values) == 0 {
		return nil, keys.PublicKey{}, fmt.Errorf("token is not provided")
	}
	claims, signer, err := auth.Verify(strings.TrimPrefix(values[0], auth.Scheme), programID)
	if err != nil {
		return nil, keys.PublicKey{}, fmt.Errorf("invalid signature: %w", err)
	}
	return claims, signer, nil
}

// Reads and the faucet need no signature.
func isPublicMethod(method string) bool {
	publicMethods := []string{
		pb.RecordStore_GetRecord_FullMethodName,
		pb.RecordStore_GetBalance_FullMethodName,
		pb.RecordStore_Airdrop_FullMethodName,
	}

	for _, m := range publicMethods {
		if method == m {
			return true
		}
	}
	return false
}

func GetSignerFromContext(ctx context.Context) (keys.PublicKey, *auth.Claims, error) {
	return fromContext(ctx, SignerKey, ClaimsKey)
}

func GetRecordSignerFromContext(ctx context.Context) (keys.PublicKey, *auth.Claims, error) {
	return fromContext(ctx, RecordSignerKey, RecordClaimsKey)
}

func fromContext(ctx context.Context, signerKey, claimsKey contextKey) (keys.PublicKey, *auth.Claims, error) {
	signer, ok := ctx.Value(signerKey).(keys.PublicKey)
	if !ok {
		return keys.PublicKey{}, nil, fmt.Errorf("%s not found in context", signerKey)
	}
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	if !ok {
		return keys.PublicKey{}, nil, fmt.Errorf("%s not found in context", claimsKey)
	}
	return signer, claims, nil
}
