// Package helpers provides test utility functions for the Jobly API.
//
// # JWT Helpers
//
// Generate test tokens signed by an in-memory RSA key:
//
//	jh := helpers.NewJWTHelper(t)
//	token := jh.GenerateToken("u1", jwt.RoleUser)
//	admin := jh.AdminToken()
//
// Pass jh.Service to middleware.Auth so the tokens validate.
//
// # Requests
//
//	rec := helpers.NewRequest(t, http.MethodPost, "/jobs").
//	    WithToken(admin).
//	    WithBody(map[string]any{"title": "new"}).
//	    Do(mux)
//
// # Assertion Helpers
//
//	helpers.AssertStatus(t, rec, http.StatusCreated)
//	helpers.AssertProblemDetails(t, rec, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, rec, "company_handle")
package helpers
