// Package client talks to the infrakeeper server over gRPC.
//
// GRPCClient manages the connection, injects the access token obtained at
// login into every call through an interceptor and maps gRPC status codes
// back onto the sentinel errors of internal/common, so callers match them
// with errors.Is exactly as they would on the server. Unreachable servers
// surface as ErrUnavailable.
//
// The credential and note methods satisfy the store interfaces of the
// client manager package.
package client
