// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, client services, durable state storage and the
// background reference-data job into a single process lifecycle. Before the
// first screen is shown the app rehydrates the persisted session and theme
// slices, so a restart lands the user where the previous run left them.
package client
