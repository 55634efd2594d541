package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/iudanet/bcp-audit/internal/demo"
	"github.com/iudanet/bcp-audit/internal/models"
)

func (c *Cli) runLogin(ctx context.Context, username string, remember bool) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	var err error
	if username == "" {
		username, err = c.io.ReadInput("Username: ")
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}
	}

	password := os.Getenv(PasswordEnv)
	if password == "" {
		password, err = c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	c.io.Println("Authenticating...")

	profile, err := c.auth.Login(ctx, username, password, remember)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("User: %s (%s)\n", displayName(profile), profile.Username)
	c.io.Printf("Role: %s\n", profile.Role)
	if remember {
		c.io.Println("Your session has been saved.")
	} else {
		c.io.Println("Session was not saved: it ends with this command.")
	}

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if !c.auth.Session().IsAuthenticated() {
		c.io.Println("Not logged in.")
		return nil
	}

	if err := c.auth.Logout(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Logged out")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()
	c.io.Printf("Server: %s\n", c.serverURL)

	session := c.auth.Session()
	if profile := session.Profile(); session.IsAuthenticated() && profile != nil {
		c.io.Printf("Session: authenticated as %s (%s)\n", profile.Username, orNA(profile.Role))
		if session.Remembered() {
			c.io.Println("Remember me: yes")
		}
	} else {
		c.io.Println("Session: not authenticated")
		c.io.Println("Run 'bcp-audit login' to authenticate.")
	}

	if c.dashboard.OfflineMode() {
		c.io.Println("Mode: offline (demo data)")
	} else {
		c.io.Println("Mode: online")
	}

	last, err := c.meta.GetLastOnlineLoad(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to read last online load: %v\n", err)
	} else if last == 0 {
		c.io.Println("Last online load: never")
	} else {
		c.io.Printf("Last online load: %s\n", formatTime(time.UnixMilli(last)))
	}

	stats, err := c.cache.Stats(ctx)
	if err != nil {
		c.io.Printf("Warning: failed to read cache stats: %v\n", err)
		return nil
	}
	c.io.Printf("Cache: %d entries, %d fresh (TTL %s)\n", stats.Total, stats.Fresh, c.cache.TTL())

	return nil
}

func (c *Cli) runMe(ctx context.Context) error {
	var profile *models.UserProfile
	if c.dashboard.OfflineMode() {
		p := demo.Profile(time.Now())
		profile = &p
	} else {
		var err error
		profile, err = c.remote.CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("failed to get user profile: %w", err)
		}
	}

	c.io.Println("=== Profile ===")
	c.io.Printf("Username:   %s\n", profile.Username)
	c.io.Printf("Name:       %s\n", displayName(profile))
	c.io.Printf("Email:      %s\n", orNA(profile.Email))
	c.io.Printf("Role:       %s\n", orNA(profile.Role))
	c.io.Printf("Department: %s\n", orNA(profile.Department))
	if profile.LastLogin != nil {
		c.io.Printf("Last login: %s\n", formatTime(*profile.LastLogin))
	}
	return nil
}

func displayName(p *models.UserProfile) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}
