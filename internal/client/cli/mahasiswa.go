package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
)

func (a *App) Student(ctx context.Context) error {
	nim, err := getSimpleText(a.reader, "NIM", os.Stdout)
	if err != nil {
		return err
	}

	student, err := a.mahasiswa.FindByNIM(ctx, nim)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	if student == nil {
		printlnFn("No student with NIM", nim)
		return nil
	}
	printlnFn(fmt.Sprintf("%s — %s, angkatan %s", student.NIM, student.Nama, student.Angkatan))
	return nil
}

func (a *App) AddStudent(ctx context.Context) error {
	var m models.Mahasiswa
	var err error

	if m.NIM, err = getSimpleText(a.reader, "NIM", os.Stdout); err != nil {
		return err
	}
	if m.Nama, err = getSimpleText(a.reader, "Nama", os.Stdout); err != nil {
		return err
	}
	if m.Angkatan, err = getSimpleText(a.reader, "Angkatan (e.g. 2024)", os.Stdout); err != nil {
		return err
	}

	if err := a.mahasiswa.Add(ctx, m); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Student added.")
	return nil
}

func (a *App) UploadExcel(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Path to .xlsx/.xls sheet", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.mahasiswa.UploadExcel(ctx, path); err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Sheet imported.")
	return nil
}
