// Package audioqc measures the acoustic quality of recorded speech.
//
// The analyzer mixes the waveform down to mono, slices it into fixed-size
// frames, and derives aggregate RMS energy, zero-crossing rate, and the
// fraction of silent frames. Those metrics feed a deterministic 0-10 quality
// score used by reports to flag recordings worth re-capturing.
package audioqc
