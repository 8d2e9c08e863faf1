package cli

import (
	"context"
	"errors"
	"os"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) RegisterAdmin(ctx context.Context) error {
	var admin models.NewAdmin
	var err error

	if admin.Fullname, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return err
	}
	if admin.Username, err = getSimpleText(a.reader, "Username", os.Stdout); err != nil {
		return err
	}
	if admin.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if admin.Jabatan, err = getSimpleText(a.reader, "Jabatan", os.Stdout); err != nil {
		return err
	}

	if admin.Password, err = getPassword(os.Stdout); err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	if admin.Password != confirm {
		printlnFn("Passwords do not match.")
		return errPasswordMismatch
	}

	if err := a.users.RegisterAdmin(ctx, admin); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Admin account created.")
	return nil
}
