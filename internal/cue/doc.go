// Package cue builds subtitle display cues from utterance sequences.
//
// The segmenter groups utterances by silence gaps and a two-line character
// budget; the adjuster then finalizes timestamps with punctuation padding
// and duration bounds. Both are pure: they produce new cue slices and never
// mutate their inputs, so concurrent tasks can share a configuration safely.
package cue
