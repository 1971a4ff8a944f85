// Package fixtures provides test data factories for the Jobly API.
//
// # Factory Pattern
//
// Create a factory with a database connection:
//
//	f := fixtures.New(tdb.DB)
//
// # Creating Test Data
//
//	company := f.CreateCompany(t)                          // random handle
//	c1 := f.CreateCompany(t, fixtures.WithHandle("c1"))
//	job := f.CreateJob(t, c1, fixtures.WithSalary(100), fixtures.WithEquity("0.1"))
//	jobs := f.SeedJobs(t)                                  // c1..c3 and j1..j4
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
