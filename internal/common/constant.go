// Package common contains shared constants and sentinel errors used across
// infrakeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultPort is the port assumed wherever a credential or launcher leaves
// the port unset.
const DefaultPort = 22
