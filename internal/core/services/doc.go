// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The error propagation policy lives here: read paths degrade to
// empty results with faults on the log, mutation paths report
// validation failures and missing rows as no-effect results, and
// only genuine storage faults surface as errors.
package services
