package client

import "context"

// UI is the minimal contract the app needs from the terminal frontend. It
// blocks until the user exits.
type UI interface {
	Run(ctx context.Context) error
}
