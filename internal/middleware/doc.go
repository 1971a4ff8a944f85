// Package middleware provides HTTP middleware for the Jobly API.
//
// # Available Middleware
//
//   - RequestID: Assigns or propagates X-Request-ID
//   - Logger: One structured slog record per request
//   - Recovery: Turns panics into a 500 problem response
//   - CORS: Cross-origin headers and preflight handling
//   - Compress: gzip responses when the client accepts it
//   - Auth: Requires a valid bearer token
//   - AdminAuth: Requires a valid bearer token with the admin role
//
// Global middleware is composed with Chain; the auth middleware is applied
// per route:
//
//	handler := middleware.Chain(mux, middleware.RequestID, middleware.Logger, middleware.Recovery)
//	mux.Handle("GET /jobs/{id}", middleware.Auth(jwtService)(http.HandlerFunc(h.Get)))
//
// Both auth middlewares answer 401 on failure, including for authenticated
// users who lack the admin role.
//
// # Context Values
//
//   - GetRequestID(ctx): Returns unique request identifier
//   - GetUsername(ctx): Returns authenticated username
//   - GetClaims(ctx): Returns the verified token claims
package middleware
