// Package services implements the driving port interfaces.
// Services contain the core restoration logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO or network dependencies of their own.
package services
