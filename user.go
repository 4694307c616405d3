package main

import "fmt"

// User associates a numeric id with a name. Both fields are set at
// construction and never change.
type User struct {
	id   int
	name string
}

func NewUser(id int, name string) *User {
	return &User{id: id, name: name}
}

// ID returns the id supplied at construction.
func (u *User) ID() int {
	return u.id
}

// Name returns the name supplied at construction.
func (u *User) Name() string {
	return u.name
}

func (u *User) String() string {
	return fmt.Sprintf("User %d: %s", u.id, u.name)
}
