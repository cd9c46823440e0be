// Package resilience provides reliability patterns for calls to external
// services.
//
// The package supports:
//   - Circuit breakers for the AI writer backends (Claude, OpenAI)
//   - Retry logic with exponential backoff and jitter
package resilience
