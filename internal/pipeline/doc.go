// Package pipeline sequences the post-processing stages for one audio file:
// normalize the transcript, segment and time subtitle cues, render SRT, and
// analyze audio quality and tone. Quality and tone run concurrently; every
// task carries a UUID in its context for log correlation and runs under a
// configurable deadline.
package pipeline
