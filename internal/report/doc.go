// Package report assembles the per-file processing summary.
package report
