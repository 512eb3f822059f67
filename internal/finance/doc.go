// Package finance implements the pure calculation engine behind the
// learning tools: risk-quiz scoring, compound-growth projection, and loan
// amortization with payoff-acceleration comparison.
//
// Every function in this package is a pure function of its arguments: no
// shared state is read or written, so all operations are safe to run
// concurrently across requests. Monetary amounts are carried as float64 at
// full precision; rounding to currency minor units is a presentation
// concern and must happen at the boundary, never inside the engine.
package finance
