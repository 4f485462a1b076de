// Package textutil provides filename sanitization helpers used when naming
// subtitle and report output files.
package textutil
