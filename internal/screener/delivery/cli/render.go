package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/tidwall/pretty"
)

const banner = `
========================================
     IDX SCALPING SNIPER MENU UTAMA
========================================
1. Screening Saham Momentum Scalping
2. Analisa Saham Tertentu
3. Screening Warran
0. Keluar
`

// RenderScreening prints the top-10 table and the top-5 detail cards.
func RenderScreening(w io.Writer, res *dto.ScreeningResult) {
	fmt.Fprintf(w, "⏳ %s | Happy Cuan\n\n", utils.PrettyDate(res.RunAt))

	if len(res.Candidates) == 0 {
		fmt.Fprintln(w, "Tidak ditemukan sinyal scalping yang kuat saat ini.")
		return
	}

	fmt.Fprintf(w, "TOP %d SAHAM MOMENTUM SCALPING (%d dipindai)\n", len(res.Top(common.TopRankingSize)), res.Scanned)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tSymbol\tName\tPrice\tChange\tVolume\tTP\tSL\tEst.TP\tScore\t")
	for i, c := range res.Top(common.TopRankingSize) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t\n",
			i+1, c.Symbol, truncate(c.Name, 24), utils.FormatRupiah(c.Price), signedPercent(c.ChangePercent),
			utils.FormatNumber(c.Volume), rupiahString(c.TP), rupiahString(c.SL),
			utils.FormatDuration(c.EstimatedTime), c.MomentumScore)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nTOP 5 REKOMENDASI SCALPING")
	for i, c := range res.Top(common.TopRecommendSize) {
		fmt.Fprintf(w, "\nRANKING #%d\n", i+1)
		fmt.Fprintln(w, "-------------------------------------")
		fmt.Fprintf(w, "Name     : %s\n", c.Name)
		fmt.Fprintf(w, "Symbol   : %s\n", c.Symbol)
		fmt.Fprintf(w, "Entry    : %s\n", utils.FormatRupiah(c.Entry))
		fmt.Fprintf(w, "TP       : %s\n", rupiahString(c.TP))
		fmt.Fprintf(w, "SL       : %s\n", rupiahString(c.SL))
		fmt.Fprintf(w, "Estimasi : %s\n", utils.FormatDuration(c.EstimatedTime))
		fmt.Fprintf(w, "Score    : %d\n", c.MomentumScore)
		fmt.Fprintf(w, "Potensi  : %s (%.2f%%)\n", utils.FormatRupiah(c.PotentialProfit), c.ProfitPercent)
		fmt.Fprintln(w, "-------------------------------------")
		fmt.Fprintf(w, "Note: %s\n", strings.Join(c.Reasons, ", "))
	}

	fmt.Fprintln(w, "\n⚠️ Trading saham berisiko. Analisis ini bukan jaminan profit.")
	fmt.Fprintln(w, "Fokus pada TOP 3 untuk peluang terbaik.")
}

// RenderAnalysis prints the quote, fundamentals and trade plan of one stock.
func RenderAnalysis(w io.Writer, a *dto.StockAnalysis) {
	s := a.Stock
	fmt.Fprintf(w, "\nAnalisa Saham: %s - %s\n", s.Symbol, s.Name)

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Harga\t: %s\n", utils.FormatRupiah(s.Price))
	fmt.Fprintf(tw, "Perubahan\t: %s (%s)\n", utils.FormatRupiah(s.Change), signedPercent(s.ChangePercent))
	fmt.Fprintf(tw, "Volume\t: %s\n", utils.FormatNumber(s.Volume))
	fmt.Fprintf(tw, "Market Cap\t: %s\n", utils.FormatRupiah(s.MarketCap))
	fmt.Fprintf(tw, "Range Harian\t: %s - %s\n", utils.FormatRupiah(s.DayLow), utils.FormatRupiah(s.DayHigh))
	if d := s.FullData; d != nil {
		fmt.Fprintf(tw, "MA50\t: %s\n", utils.FormatRupiah(d.FiftyDayAverage))
		fmt.Fprintf(tw, "MA200\t: %s\n", utils.FormatRupiah(d.TwoHundredDayAverage))
		fmt.Fprintf(tw, "PER\t: %s\n", orDash(d.TrailingPE))
		fmt.Fprintf(tw, "PBV\t: %s\n", orDash(d.PriceToBook))
		fmt.Fprintf(tw, "Div Yield\t: %s%%\n", orDash(d.DividendYield))
		fmt.Fprintf(tw, "EPS\t: %s\n", orDash(d.EpsTrailingTwelveMonths))
		rating := string(d.AverageAnalystRating)
		if rating == "" {
			rating = "-"
		}
		fmt.Fprintf(tw, "Analyst Rate\t: %s\n", rating)
	}
	_ = tw.Flush()

	st := a.Strategy
	fmt.Fprintln(w, "\nStrategi Trading:")
	tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Sinyal\t: %s\n", st.Note)
	fmt.Fprintf(tw, "Entry Posisi\t: %s\n", utils.FormatRupiah(st.Entry))
	fmt.Fprintf(tw, "Take Profit\t: %s (TP1), %s (TP2)\n", utils.FormatRupiah(st.TP1), utils.FormatRupiah(st.TP2))
	fmt.Fprintf(tw, "Stop Loss\t: %s\n", utils.FormatRupiah(st.SL))
	rr := "-"
	if a.HasRiskReward {
		rr = utils.Fixed2(a.RiskReward)
	}
	fmt.Fprintf(tw, "Risk/Reward\t: %s\n", rr)
	_ = tw.Flush()

	if s.LastUpdated != "" {
		fmt.Fprintf(w, "\nLast Update   : %s\n", lastUpdated(s.LastUpdated))
	}
}

// RenderRaw pretty-prints an upstream record.
func RenderRaw(w io.Writer, raw json.RawMessage) {
	_, _ = w.Write(pretty.Pretty(raw))
}

// RenderWarrants prints the warrant table with a short risk notice.
func RenderWarrants(w io.Writer, pairings []entity.WarrantPairing) {
	if len(pairings) == 0 {
		fmt.Fprintln(w, "❌ Tidak ditemukan warran yang memenuhi kriteria saat ini.")
		return
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, " WARRAN AKTIF HARI INI ")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	tw := tabwriter.NewWriter(w, 15, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Symbol\tHarga Warran\tHarga Induk\t")
	for _, p := range pairings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", p.Symbol, utils.FormatRupiah(p.Price), utils.FormatRupiah(p.ParentPrice))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "📊 Total: %d warran aktif ditemukan\n", len(pairings))

	fmt.Fprintln(w, "\n⚠️  PERINGATAN RISIKO:")
	fmt.Fprintln(w, "• Trading warran berisiko tinggi dan kompleks")
	fmt.Fprintln(w, "• Harga bisa turun drastis mendekati expiry date")
	fmt.Fprintln(w, "• Analisis ini bukan jaminan profit, lakukan riset mandiri")
}

func signedPercent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// rupiahString formats a fixed-point level such as "1050.00".
func rupiahString(v string) string {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return v
	}
	return utils.FormatRupiah(d.InexactFloat64())
}

func orDash(v float64) string {
	if v == 0 {
		return "-"
	}
	return utils.FormatNumber(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func lastUpdated(v string) string {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return v
	}
	return utils.PrettyDate(t)
}
