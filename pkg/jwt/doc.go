// Package jwt provides JSON Web Token utilities for the Jobly API.
//
// Tokens are RS256-signed and carry the registered claims plus a username
// and a role. Jobly only verifies tokens; minting is left to an external
// identity service and the admin-token developer tool.
//
// # Token Generation
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    Issuer:         "jobly",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{Username: "u1", Role: jwt.RoleAdmin})
//
// # Token Validation
//
// A service built with only PublicKeyPath can validate but not sign:
//
//	claims, err := service.Validate(tokenString)
//	if errors.Is(err, jwt.ErrTokenExpired) {
//	    // ask the client to re-authenticate
//	}
//	if claims.IsAdmin() { ... }
package jwt
