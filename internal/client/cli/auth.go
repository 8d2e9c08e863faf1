package cli

import (
	"context"
	"fmt"
	"os"
)

// Input seams, replaced in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getAmount     = GetAmount
	chooseOption  = ChooseOption
)

func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in. Use 'logout' first.")
		return nil
	}

	identifier, err := getSimpleText(a.reader, "Username or email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, identifier, password)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Fullname))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Signed out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s (%s) — %s, %s", user.Fullname, user.Username, user.Jabatan, user.Email))
	return nil
}
