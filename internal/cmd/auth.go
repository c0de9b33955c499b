package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-blog-client/internal/errors"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Log in and store the session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var (
	registerName     string
	registerPassword string
	registerConfirm  string
)

var registerCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity of the current session",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password (prompted when omitted)")

	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "password (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "password confirmation (defaults to password)")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := args[0]
	password, err := resolvePassword(loginPassword)
	if err != nil {
		return err
	}

	rt := buildRuntime()
	token, lifetime, err := rt.auth.Login(email, password)
	if err != nil {
		return err
	}
	if err := rt.manager.Login(token, lifetime); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s, session valid for %s\n", email, lifetime)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	email := args[0]
	password, err := resolvePassword(registerPassword)
	if err != nil {
		return err
	}
	confirm := registerConfirm
	if confirm == "" {
		confirm = password
	}

	rt := buildRuntime()
	if err := rt.auth.Register(registerName, email, password, confirm); err != nil {
		return err
	}

	fmt.Printf("Registered %s, you can log in now\n", email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	rt := buildRuntime()
	if err := rt.manager.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	rt := buildRuntime()
	if !rt.manager.Authenticated() {
		return errors.ErrNotAuthenticated
	}

	identity := rt.manager.Identity()
	session, err := rt.manager.Session()
	if err != nil {
		return err
	}

	if identity.UserID != "" {
		fmt.Printf("User id: %s\n", identity.UserID)
	}
	if identity.Email != "" {
		fmt.Printf("Email:   %s\n", identity.Email)
	}
	if identity.IsZero() {
		fmt.Println("Logged in, but the token carries no identity claims")
	}
	fmt.Printf("Session expires at %s\n", session.ExpiresAt.Format(time.RFC1123))
	return nil
}

func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", errors.Wrapf(err, "reading password")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}
	return password, nil
}
