// adduser provisions an account directly against the user store, bypassing
// the HTTP surface. Useful for seeding a fresh deployment.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/dberestov/taskdeck/internal/server/auth"
	"github.com/dberestov/taskdeck/internal/server/config"
	"github.com/dberestov/taskdeck/internal/server/docstore"
	"github.com/dberestov/taskdeck/internal/server/users"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] == "" || os.Args[1][0] == '-' {
		fmt.Fprintln(os.Stderr, "usage: adduser <email> [-d data-dir]")
		os.Exit(1)
	}
	email := os.Args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "adduser: %v\n", err)
		os.Exit(1)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "adduser: reading password: %v\n", err)
		os.Exit(1)
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "adduser: password must be at least 8 characters")
		os.Exit(1)
	}

	store := docstore.New(filepath.Join(cfg.DataDir, "users.json"))
	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidity)
	svc := users.NewService(users.NewFileRepository(store), tokens)

	user, err := svc.Register(context.Background(), email, string(password))
	if err != nil {
		fmt.Fprintf(os.Stderr, "adduser: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("created user %d (%s)\n", user.ID, user.Email)
}
