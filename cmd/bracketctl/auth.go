package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mep-tools/bracket-tool/models"
)

type credentials struct {
	email    string
	password string
}

func (cr *credentials) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cr.email, "email", "", "account email")
	cmd.Flags().StringVar(&cr.password, "password", "", "account password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")
}

func (c *cli) registerCmd() *cobra.Command {
	var cr credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an engineer account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.passwordOrPrompt(cr.password)
			if err != nil {
				return err
			}

			user, err := c.client.Register(cmd.Context(), models.RegisterRequest{Email: cr.email, Password: password})
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Registered %s (id %d)\n", user.Email, user.ID)
			return nil
		},
	}
	cr.bind(cmd)

	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var cr credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the access token in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := c.passwordOrPrompt(cr.password)
			if err != nil {
				return err
			}

			token, err := c.client.Login(cmd.Context(), models.LoginRequest{Email: cr.email, Password: password})
			if err != nil {
				return err
			}

			path, err := c.saveToken(token.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.out, "Logged in as %s, token saved to %s\n", cr.email, path)
			return nil
		},
	}
	cr.bind(cmd)

	return cmd
}

// passwordOrPrompt returns flagValue or asks for the password on stdin,
// without echo when stdin is a terminal.
func (c *cli) passwordOrPrompt(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(c.out, "Password: ")

	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		return "", errors.New("password must not be empty")
	}
	return line, nil
}
