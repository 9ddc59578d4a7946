// Package subprocess executes the assembled command as a child process.
//
// It supports two modes: capture, which buffers all output and returns it
// with the exit status, and stream, which forwards output line by line
// while the process runs. Both modes take an explicit argument vector and
// environment slice; the runner never consults ambient process state
// beyond spawning.
package subprocess
