// Package executor provides the print job execution engine.
//
// The executor walks a queue of types.Action values against one backend,
// strictly in order, wrapped in the backend lifecycle:
//
//	Initialize -> OpenConnection -> actions... -> CutPaper/OpenCashDrawer
//	           -> Release -> CloseConnection
//
// Cancellation is checked between actions. Release and CloseConnection run
// for whatever state was reached, whether the job succeeded, failed or was
// cancelled.
package executor
