// Package ffmpeg builds and runs the external ffmpeg invocation at the heart
// of vidsqueeze.
//
// Build turns a validated Request into a flat argument list: a single merged
// video filter chain (crop, frame rate, scale), the trim duration, the audio
// policy, and the overwrite policy. The Runner launches that list as a child
// process and parses the time= tokens ffmpeg writes to stderr into a
// monotonically non-decreasing progress callback, guaranteeing a final update
// at exactly the clip duration. Validation failures surface before any
// process is spawned; a failed run never invokes further callbacks.
package ffmpeg
