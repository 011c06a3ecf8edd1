package domain

import (
	"fmt"
	"strings"
	"time"
)

// Client is a billable party. Every invoice belongs to exactly one client.
type Client struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	CompanyCode string
	Address     string
	CreatedAt   time.Time
}

// Validate checks the construction invariants for a client.
// Name is the only required attribute; contact fields are optional.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client name is required")
	}
	if len(c.Name) > 100 {
		return fmt.Errorf("client name must be at most 100 characters")
	}
	return nil
}

// DisplayName returns the name with the company code appended when present,
// e.g. "UAB Pavyzdys (304123456)".
func (c *Client) DisplayName() string {
	if c.CompanyCode == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.CompanyCode)
}
