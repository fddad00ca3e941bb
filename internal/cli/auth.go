package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/weighttrack/internal/common"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/settings"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
// The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username (3-30 letters, digits or _)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.Register(ctx, username, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			fmt.Println("That username is taken.")
		case errors.Is(err, common.ErrorInvalidUsernameFormat):
			fmt.Println("Usernames are 3-30 characters: letters, digits and underscore.")
		case errors.Is(err, common.ErrorInvalidPasswordFormat):
			fmt.Println("Passwords need at least 8 characters with a digit, an uppercase and a lowercase letter, and a symbol.")
		default:
			fmt.Println("Registration failed:", err)
		}
		return err
	}

	fmt.Println("Account created. You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates. The last successfully
// used username is offered as the default. On success the session user is
// set and the username is remembered for the next start.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter username"
	last, err := a.settings.Get(ctx, settings.KeyLastUsername)
	if err != nil {
		a.log.Warn(ctx, "failed to read last username", "error", err)
	}
	if last != "" {
		prompt = fmt.Sprintf("Enter username (empty for %q)", last)
	}

	username, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		username = last
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.auth.Authenticate(ctx, username, string(password))
	if err != nil {
		// unknown user and wrong password produce the same message
		fmt.Println("Login failed: unknown username or wrong password.")
		return err
	}

	a.userID = userID
	a.userName = username

	if err := a.settings.Set(ctx, settings.KeyLastUsername, username); err != nil {
		a.log.Warn(ctx, "failed to remember username", "error", err)
	}

	fmt.Println("Logged in.")
	return nil
}

// Logout clears the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.userID = 0
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}
