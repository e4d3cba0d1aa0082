// Package stats turns raw habit, journal and focus rows into the numbers shown
// to users. Every function is pure and deterministic: the same rows and the
// same "today" always produce the same result, and empty input yields the
// zero value for the metric rather than an error.
package stats
