// Package session is the imperative shell around package fourier.
//
// A [State] is an immutable snapshot of what the user has selected: the
// curve, the half-bandwidth K and, once computed, the coefficient set.
// Every mutation returns a new State with a higher generation. A [Computer]
// runs coefficient computations off the caller's goroutine and discards any
// result that a newer submission has superseded.
//
// Animation time is owned here too: a [Clock] maps wall time to a phase in
// [0, 1) and a [Tail] keeps the most recent traced points.
package session
