// Package ffprobe shells out to the ffprobe binary to read container and
// stream metadata without decoding media. The transcode pipeline uses it to
// learn the input duration before building an ffmpeg command and to compare
// byte sizes afterwards.
package ffprobe
