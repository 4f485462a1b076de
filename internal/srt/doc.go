// Package srt maps cue sequences to and from SRT subtitle text.
//
// Render and Parse are exact inverses modulo sequential renumbering, which
// is what makes round-trip verification of generated subtitles possible.
package srt
