// Package client is the CLI's connection to the wheel server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the session: state, budget, must-haves, swipe deck, decisions, the
//     liked garage and vehicle details, plus a health Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that stamps every call
//     with an x-request-id and a deadline, and maps gRPC status codes back
//     to the sentinel errors in internal/common.
//
// # Error Handling
//
// Callers match with errors.Is: common.ErrorInvalidArgument,
// common.ErrorNotFound, common.ErrorAlreadyDecided, ErrUnavailable.
package client
