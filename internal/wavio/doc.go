// Package wavio decodes 16-bit PCM WAV audio into analyzable waveforms.
package wavio
