//go:build !windows

package question

// LineBreak terminates every menu line rendered in list mode.
const LineBreak = "\n"
