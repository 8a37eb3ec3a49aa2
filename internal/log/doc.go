// Package log provides a minimal leveled console logger with colored
// level prefixes. Errors go to stderr, everything else to stdout.
package log
