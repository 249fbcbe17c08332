// Package wire defines the GarageService gRPC contract: request and
// response messages, a JSON codec registered under the "json" content
// subtype, and the service descriptor with its client stub.
package wire
