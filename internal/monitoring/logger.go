package monitoring

import "log"

// Logf is the printf-shaped diagnostic logger carried by the calculator and the CLI.
type Logf func(format string, v ...interface{})

// Std logs through log.Printf.
func Std(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Discard drops every message.
func Discard(string, ...interface{}) {}

// Prefixed returns a logger which prepends prefix to every message of f.
// A nil f gives Discard.
func Prefixed(prefix string, f Logf) Logf {
	if f == nil {
		return Discard
	}
	return func(format string, v ...interface{}) {
		f(prefix+format, v...)
	}
}
