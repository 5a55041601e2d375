// Package services contains stateless domain services that operate across
// aggregates: the FareCalculator, which prices orders, and the DriverMatcher,
// which decides driver eligibility and ranks candidates for assignment.
package services
