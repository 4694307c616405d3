// basicuser constructs a user record and prints its name.
//
// Example:
//
//	basicuser -id=1 -name=Test
//
// Output:
//
//	Test
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

var (
	flagID   = flag.Int("id", 1, "the id of the user")
	flagName = flag.String("name", "Test", "the name of the user")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout, *flagID, *flagName); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run builds the user, registers it, resolves it back by id, and
// writes the resolved name to w.
func run(w io.Writer, id int, name string) error {
	u := NewUser(id, name)

	manager := NewUserManager()
	manager.Add(u)

	found, err := manager.Lookup(u.ID())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, found.Name())
	return err
}
