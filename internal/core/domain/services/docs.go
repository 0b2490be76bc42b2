// Package services provides domain services that implement business rules
// spanning multiple aggregates of the ordering platform.
//
// The package includes:
//   - AccessPolicy: role-based authorization decisions for protected operations
//
// Domain services stay free of transport and persistence concerns. Transport
// adapters translate their errors into protocol responses.
package services
