// Package recognizer adapts external speech-recognition output into
// transcript fragments. The engines themselves run out of process; this
// package only reads what they produce.
package recognizer
