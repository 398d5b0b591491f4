package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/pkg/logger"
)

// Menu is the interactive terminal front end.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	screening service.ScreeningService
	analysis  service.AnalysisService
	warrant   service.WarrantService
	logger    *logger.Logger
}

// NewMenu creates a Menu reading answers from in and writing to out.
func NewMenu(in io.Reader, out io.Writer, screening service.ScreeningService, analysis service.AnalysisService, warrant service.WarrantService, log *logger.Logger) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		screening: screening,
		analysis:  analysis,
		warrant:   warrant,
		logger:    log,
	}
}

// Run shows the menu until the user picks 0, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, banner)
		answer, ok := m.prompt("Pilih menu (1/2/3/0): ")
		if !ok || ctx.Err() != nil {
			fmt.Fprintln(m.out, "Keluar...")
			return nil
		}

		switch answer {
		case "1":
			m.RunScreening(ctx)
		case "2":
			symbol, ok := m.prompt("Masukkan Kode/Nama Saham (Contoh: BBCA): ")
			if !ok {
				fmt.Fprintln(m.out, "Keluar...")
				return nil
			}
			m.RunAnalysis(ctx, symbol, false)
		case "3":
			m.RunWarrants(ctx)
		case "0":
			fmt.Fprintln(m.out, "Keluar...")
			return nil
		default:
			fmt.Fprintf(m.out, "Pilihan %q tidak dikenal.\n", answer)
		}
	}
}

// RunScreening runs one screening and prints the result.
func (m *Menu) RunScreening(ctx context.Context) {
	fmt.Fprintln(m.out, "📡 Mengambil data saham...")
	res, err := m.screening.Screen(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			fmt.Fprintln(m.out, "Tidak ada data saham yang diterima")
			return
		}
		fmt.Fprintf(m.out, "Gagal screening: %v\n", err)
		return
	}
	RenderScreening(m.out, res)
}

// RunAnalysis prints the trade plan of symbol, or its raw upstream record.
func (m *Menu) RunAnalysis(ctx context.Context, symbol string, raw bool) {
	if strings.TrimSpace(symbol) == "" {
		fmt.Fprintln(m.out, "Data tidak ditemukan.")
		return
	}

	if raw {
		data, err := m.analysis.GetRaw(ctx, symbol)
		if err != nil {
			m.printLookupError(err)
			return
		}
		RenderRaw(m.out, data)
		return
	}

	a, err := m.analysis.Analyze(ctx, symbol)
	if err != nil {
		m.printLookupError(err)
		return
	}
	RenderAnalysis(m.out, a)
}

// RunWarrants runs one warrant screening and prints the table.
func (m *Menu) RunWarrants(ctx context.Context) {
	fmt.Fprintln(m.out, "📡 Mengambil data warran...")
	pairings, err := m.warrant.Screen(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMissingCodeColumn) || errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(m.out, "Error membaca file stockcode.csv")
			return
		}
		fmt.Fprintf(m.out, "❌ Error dalam screening warran: %v\n", err)
		return
	}
	RenderWarrants(m.out, pairings)
}

func (m *Menu) printLookupError(err error) {
	if errors.Is(err, repository.ErrNotFound) {
		fmt.Fprintln(m.out, "Data tidak ditemukan.")
		return
	}
	m.logger.Debug("Lookup failed", logger.ErrorField(err))
	fmt.Fprintf(m.out, "Gagal mengambil data: %v\n", err)
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
