// Package services implements the driving port interfaces.
// Services contain the core business logic (dataset resolution,
// filtering and the statistics reporters) and call out to driven
// ports for file access and configuration.
//
// Services are pure Go with no CGO or external dependencies.
package services
