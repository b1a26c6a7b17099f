// Package testutil provides utilities for testing sharprinter components.
//
// Key components:
//   - MockBackend: testify mock of types.Backend for call-level expectations
//   - ExpectLifecycle: registers the calls every successful job makes
package testutil
