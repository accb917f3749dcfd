package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("customer name is required")
	ErrInvalidEmail = errors.New("customer email must contain '@'")
)

// Customer represents a buyer known to the shop.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// NewCustomer builds a customer ensuring required invariants.
func NewCustomer(id, name, email string) (*Customer, error) {
	customer := &Customer{ID: id}
	if err := customer.Rename(name); err != nil {
		return nil, err
	}
	if err := customer.UpdateEmail(email); err != nil {
		return nil, err
	}
	return customer, nil
}

// Rename trims and validates the customer name.
func (c *Customer) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// UpdateEmail validates and applies the contact address.
func (c *Customer) UpdateEmail(email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// Validate re-applies core invariants for persistence.
func (c *Customer) Validate() error {
	if err := c.Rename(c.Name); err != nil {
		return err
	}
	return c.UpdateEmail(c.Email)
}
