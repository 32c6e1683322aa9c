package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/client"
	"github.com/dmitrijs2005/wellsync/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account on the server. The password is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success! You can log in now.")
	return nil
}

// Login prompts for credentials and attaches the engine to the user.
//
// An online login is tried first. If the server is unavailable
// (errors.Is(err, client.ErrUnavailable)) it falls back to the credentials
// cached by the last online login, so records can be written offline and
// delivered later.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.authService.OnlineLogin(ctx, userName, password)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			return fmt.Errorf("login unsuccessful: %w", err)
		}
		a.logger.Info(ctx, "server unavailable, trying offline login")
		userID, err = a.authService.OfflineLogin(ctx, userName, password)
		if err != nil {
			return fmt.Errorf("offline login unsuccessful: %w", err)
		}
	}

	if a.isLoggedIn() && a.userID != userID {
		a.engine.Cleanup()
	}
	if err := a.engine.Initialize(ctx, userID); err != nil {
		return err
	}
	a.userID, a.userName = userID, userName

	fmt.Fprintf(a.out, "Logged in as %s\n", userName)
	return nil
}

// Logout detaches the engine and forgets the cached credentials. Records
// that are still pending stay in the outbox for the next login.
func (a *App) Logout(ctx context.Context) error {
	a.engine.Cleanup()
	if err := a.authService.ClearOfflineData(ctx); err != nil {
		return err
	}
	a.userID, a.userName = "", ""
	return nil
}
