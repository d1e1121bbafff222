// Package services implements the driving port interfaces.
// Services contain the core request logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no transport or protocol dependencies.
package services
