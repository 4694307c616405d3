// basicuser is a small demo program built around an immutable user
// record and a generic Add function.
//
// basicuser constructs a user, registers it in an in-memory manager,
// looks it up by id, and prints the user's name to stdout.
//
// Example:
//
//	basicuser -id=1 -name=Test
//
// Output:
//
//	Test
package main
