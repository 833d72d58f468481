package redis

import (
	"context"
	"io"
)

// Shutdown returns a shutdown hook that closes the client.
//
//	app.Run(addr, folio.ShutdownHook(redis.Shutdown(client)))
func Shutdown(client io.Closer) func(context.Context) error {
	return func(context.Context) error {
		if client == nil {
			return nil
		}
		return client.Close()
	}
}
