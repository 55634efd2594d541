package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runHealth(ctx context.Context) error {
	health, err := c.remote.Health(ctx)
	if err != nil {
		return fmt.Errorf("failed to check server health at %s: %w", c.serverURL, err)
	}

	c.io.Printf("Server: %s\n", c.serverURL)
	c.io.Printf("Status: %s\n", health.Status)
	c.io.Printf("Message: %s\n", health.Message)
	c.io.Printf("Timestamp: %s\n", health.Timestamp)
	return nil
}

func (c *Cli) runCacheClear(ctx context.Context, prefix string) error {
	n, err := c.cache.Clear(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	c.io.Printf("✓ Removed %d cached response(s)\n", n)
	return nil
}

func (c *Cli) runCachePurge(ctx context.Context) error {
	n, err := c.cache.Purge(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	c.io.Printf("✓ Removed %d expired response(s)\n", n)
	return nil
}
