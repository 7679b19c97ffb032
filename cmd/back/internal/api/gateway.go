package api

import (
	"net/textproto"

	"rizoma/internal/auth"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
)

// GatewayHeaderMatcher forwards the record co-signature header as gRPC
// metadata next to the headers the gateway passes by default.
func GatewayHeaderMatcher(key string) (string, bool) {
	if textproto.CanonicalMIMEHeaderKey(key) == textproto.CanonicalMIMEHeaderKey(auth.RecordHeader) {
		return auth.RecordHeader, true
	}
	return runtime.DefaultHeaderMatcher(key)
}
