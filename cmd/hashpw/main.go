// Command hashpw prints the bcrypt hash of a password, for use as
// ORGANIZER_PASSWORD_HASH in the server environment.
package main

import (
	"fmt"
	"os"

	"github.com/lucaferrario/tournament-manager/utils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashpw <password>")
		os.Exit(2)
	}

	hash, err := utils.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
