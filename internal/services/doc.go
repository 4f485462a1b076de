// Package services defines the shared error taxonomy and context plumbing
// used across the subtitle pipeline.
//
// Errors are built from exported sentinel markers combined with component and
// operation context via Wrap, so callers can classify failures with errors.Is
// while logs keep enough detail (indices, timestamps) to diagnose without
// re-running the task. Context helpers carry task, stage, and correlation
// identifiers for structured logging.
package services
