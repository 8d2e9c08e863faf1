package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/client/services"
)

// askListQuery fills a ListQuery interactively, keeping defaults on empty
// answers.
func (a *App) askListQuery() (models.ListQuery, error) {
	q := models.DefaultListQuery()

	search, err := getSimpleText(a.reader, "Search (empty for all)", os.Stdout)
	if err != nil {
		return q, err
	}
	q.Search = search

	page, err := getSimpleText(a.reader, "Page (empty for 1)", os.Stdout)
	if err != nil {
		return q, err
	}
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return q, fmt.Errorf("page must be a positive number")
		}
		q.Page = n
	}

	start, err := getSimpleText(a.reader, "Start date YYYY-MM-DD (empty to skip)", os.Stdout)
	if err != nil {
		return q, err
	}
	end, err := getSimpleText(a.reader, "End date YYYY-MM-DD (empty to skip)", os.Stdout)
	if err != nil {
		return q, err
	}
	q.StartDate = start
	q.EndDate = end

	return q, nil
}

func (a *App) List(ctx context.Context) error {
	q, err := a.askListQuery()
	if err != nil {
		return err
	}

	page, err := a.kwitansi.List(ctx, q)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}

	printKwitansiTable(page)
	return nil
}

func printKwitansiTable(page *models.KwitansiPage) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NIM\tNAMA\tJENIS BAYAR\tNOMINAL\tTANGGAL\tKET")
	for _, k := range page.Data {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			k.NIM, k.Nama, k.JenisBayar, k.Nominal, k.TanggalBayar, k.KeteranganBayar)
	}
	w.Flush()
	printlnFn(sb.String())
	printlnFn(fmt.Sprintf("%d record(s), page of %d", page.TotalData, page.TotalPages))
}

func (a *App) Export(ctx context.Context) error {
	q, err := a.askListQuery()
	if err != nil {
		return err
	}
	exportType, err := chooseOption(a.reader, "Export format:", []string{"excel", "pdf"}, os.Stdout)
	if err != nil {
		return err
	}

	path, err := a.kwitansi.Export(ctx, q, exportType)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Saved to", path)
	return nil
}

// Cetak is the create-and-print flow. The NIM is looked up first; a known
// student pre-fills name and cohort so the operator only confirms them.
func (a *App) Cetak(ctx context.Context) error {
	in := services.KwitansiInput{}

	nim, err := getSimpleText(a.reader, "NIM", os.Stdout)
	if err != nil {
		return err
	}
	in.NIM = nim

	student, err := a.mahasiswa.FindByNIM(ctx, nim)
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	if student != nil {
		printlnFn(fmt.Sprintf("Found: %s, angkatan %s", student.Nama, student.Angkatan))
		in.Nama = student.Nama
		in.Angkatan = student.Angkatan
	} else {
		printlnFn("NIM not in registry, enter the details manually.")
		if in.Nama, err = getSimpleText(a.reader, "Nama", os.Stdout); err != nil {
			return err
		}
		if in.Angkatan, err = getSimpleText(a.reader, "Angkatan", os.Stdout); err != nil {
			return err
		}
	}

	if in.JenisBayar, err = chooseOption(a.reader, "Jenis bayar:", services.JenisBayarOptions, os.Stdout); err != nil {
		return err
	}
	if in.CaraBayar, err = chooseOption(a.reader, "Cara bayar:", services.CaraBayarOptions, os.Stdout); err != nil {
		return err
	}
	if in.TanggalBayar, err = getSimpleText(a.reader, "Tanggal bayar (YYYY-MM-DD)", os.Stdout); err != nil {
		return err
	}
	if in.Nominal, err = getAmount(a.reader, "Nominal (rupiah)", os.Stdout); err != nil {
		return err
	}
	if in.KeteranganBayar, err = chooseOption(a.reader, "Keterangan:", services.KeteranganBayarOptions, os.Stdout); err != nil {
		return err
	}

	path, err := a.kwitansi.Create(ctx, in, a.session.CurrentUser())
	if err != nil {
		a.handleErr(ctx, err)
		return err
	}
	printlnFn("Receipt saved to", path)
	return nil
}
