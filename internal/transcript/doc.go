// Package transcript adapts raw recognizer output into validated utterance
// sequences with monotonic timing.
//
// It is the entry stage of the subtitle pipeline: every downstream component
// (cue building, tone analysis, reporting) consumes the immutable utterances
// produced here and never the raw fragments.
package transcript
