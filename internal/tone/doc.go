// Package tone classifies the emotional register of a transcript.
//
// Analysis is purely lexical: per-emotion keyword lexicons, formal and
// informal marker words, and filler tokens, applied to normalized utterances
// together with their timing. The built-in lexicons target French speech and
// can be replaced or extended through a YAML file.
package tone
