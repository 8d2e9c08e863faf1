package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
)

func TestRegisterAdminCommand(t *testing.T) {
	captureOutput(t)
	stubInput(t,
		[]string{"Siti Aminah", "siti", "siti@kampus.ac.id", "Bendahara"},
		[]string{"rahasia1", "rahasia1"},
	)

	usr := &fakeUsers{}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, &fakeMahasiswa{}, usr)

	require.NoError(t, app.RegisterAdmin(context.Background()))

	require.NotNil(t, usr.registered)
	assert.Equal(t, models.NewAdmin{
		Fullname: "Siti Aminah",
		Username: "siti",
		Email:    "siti@kampus.ac.id",
		Jabatan:  "Bendahara",
		Password: "rahasia1",
	}, *usr.registered)
}

func TestRegisterAdminCommandPasswordMismatch(t *testing.T) {
	lines := captureOutput(t)
	stubInput(t,
		[]string{"Siti Aminah", "siti", "siti@kampus.ac.id", "Bendahara"},
		[]string{"rahasia1", "rahasia2"},
	)

	usr := &fakeUsers{}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, &fakeMahasiswa{}, usr)

	err := app.RegisterAdmin(context.Background())
	assert.ErrorIs(t, err, errPasswordMismatch)
	assert.Nil(t, usr.registered, "nothing must be sent on mismatch")
	assert.Contains(t, strings.Join(*lines, "\n"), "Passwords do not match")
}
