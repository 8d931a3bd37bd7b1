package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dbelyaev/taskvault/internal/client/models"
	"github.com/dbelyaev/taskvault/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the new account fields and attempts to create the
// account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.users.Register(ctx, fullName, email, password); err != nil {
		a.notifyErr(ctx, err)
		return err
	}

	printlnFn("Account created!")
	return nil
}

// Login prompts for credentials, verifies them against the credential
// store, and on success persists the session markers and updates the
// in-memory session. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.users.Login(ctx, email, password)
	if err != nil {
		a.notifyErr(ctx, err)
		return err
	}

	if err := a.sessions.Start(ctx, user.Email, user.FullName); err != nil {
		a.notifyErr(ctx, err)
		return err
	}

	a.session = models.Session{Email: user.Email, Name: user.FullName}
	printlnFn(fmt.Sprintf("Welcome, %s!", user.FullName))
	return nil
}

// Logout removes the session markers and clears the in-memory session.
// Logging out while already logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.End(ctx); err != nil {
		a.notifyErr(ctx, err)
		return err
	}
	a.session = models.Session{}
	printlnFn("Logged out.")
	return nil
}

// Profile shows the logged-in user's name and email.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.notifyErr(ctx, common.ErrNoSession)
		return common.ErrNoSession
	}
	printlnFn("Name: " + a.session.Name)
	printlnFn("Email: " + a.session.Email)
	return nil
}
