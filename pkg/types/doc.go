// Package types defines the core types and interfaces shared by the layout
// engine, the printer context and the output backends. This includes the
// alignment and size enums, the Backend contract, and the Action variants
// that make up a print queue.
package types
