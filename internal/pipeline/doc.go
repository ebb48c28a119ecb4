// Package pipeline sequences the per-file conversion flow — validate,
// probe, select, plan, execute — and aggregates batch statistics. Files
// are processed strictly one after another; a per-file failure is logged
// and counted, never fatal to the batch.
package pipeline
