// Package api handles incoming HTTP requests, routing, request
// validation, and response formatting. It is the adapter between
// external clients and the stores and services underneath,
// translating HTTP concerns into domain operations.
package api
