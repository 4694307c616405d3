package main

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an index or id does not resolve to a
// stored user.
var ErrNotFound = errors.New("user not found")

// UserLookup resolves a user by id.
type UserLookup interface {
	Lookup(id int) (*User, error)
}

// UserManager holds users in insertion order.
type UserManager struct {
	users []*User
}

func NewUserManager() *UserManager {
	return &UserManager{}
}

// Add appends u. A nil user is ignored.
func (m *UserManager) Add(u *User) {
	if u == nil {
		return
	}
	m.users = append(m.users, u)
}

// Get returns the user at index i.
func (m *UserManager) Get(i int) (*User, error) {
	if i < 0 || i >= len(m.users) {
		return nil, fmt.Errorf("index %d out of range: %w", i, ErrNotFound)
	}
	return m.users[i], nil
}

// Lookup returns the first user whose id matches.
func (m *UserManager) Lookup(id int) (*User, error) {
	for _, u := range m.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, fmt.Errorf("id %d: %w", id, ErrNotFound)
}

// Count reports how many users are stored.
func (m *UserManager) Count() int {
	return len(m.users)
}

func (m *UserManager) String() string {
	return fmt.Sprintf("UserManager with %d users", len(m.users))
}
