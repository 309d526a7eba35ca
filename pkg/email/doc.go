// Package email provides transactional email dispatch behind a minimal
// EmailSender interface.
//
// NewPostmarkClient is the production implementation; NewLogSender stands
// in for local development and tests. Callers that must not fail on
// delivery problems (notification paths) should dispatch through a
// best-effort side task and discard the result.
package email
