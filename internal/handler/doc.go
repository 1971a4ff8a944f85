// Package handler provides HTTP request handlers for the Jobly API.
//
// Each handler struct encapsulates the dependencies needed to serve one
// feature area. Handlers decode and validate the request, call a service and
// write JSON.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts a config struct with dependencies
//   - Methods handle specific HTTP endpoints
//   - Request bodies are checked with Validator (go-playground/validator tags)
//   - Service errors are mapped to RFC 9457 Problem Details by MapServiceError
//
// # Response Format
//
// Successful responses wrap the resource under a named key:
//
//	{"job": {...}}
//	{"jobs": [...]}
//	{"deleted": "job id: 42"}
//
// Errors use application/problem+json.
//
// # Example Usage
//
//	h := NewJobHandler(JobHandlerConfig{JobService: jobService})
//	h.RegisterRoutes(mux, middleware.Auth(jwtService), middleware.AdminAuth(jwtService))
package handler
