package telegram

import (
	"fmt"
	"strings"
	"time"

	"idx-scalping-sniper/internal/entity"
	"idx-scalping-sniper/pkg/utils"
)

const maxMessageLen = 4090

// FormatScreeningDigest formats the top candidates of a screening run as a Markdown message.
func FormatScreeningDigest(candidates []entity.ScoredCandidate, scanned int, runAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("🎯 *IDX Scalping Sniper* 🎯\n")
	sb.WriteString(fmt.Sprintf("🕒 %s | %d saham dipindai\n\n", utils.PrettyDate(runAt), scanned))

	if len(candidates) == 0 {
		sb.WriteString("_Tidak ada saham yang memenuhi kriteria momentum saat ini._\n")
		return sb.String()
	}

	for i, c := range candidates {
		sb.WriteString(fmt.Sprintf("%d. *%s* (score %d)\n", i+1, c.Symbol, c.MomentumScore))
		sb.WriteString(fmt.Sprintf("💰 %s | 📈 +%.2f%% | 🔊 %.2fx\n", utils.FormatRupiah(c.Price), c.ChangePercent, c.VolumeRatio))
		sb.WriteString(fmt.Sprintf("🎯 TP %s | 🛡 SL %s | ⏱ %s\n", c.TP, c.SL, utils.FormatDuration(c.EstimatedTime)))
		if len(c.Reasons) > 0 {
			sb.WriteString(fmt.Sprintf("💡 %s\n", strings.Join(c.Reasons, ", ")))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatWarrantDigest formats warrant pairings into as many Markdown messages as needed
// to stay under the Telegram length limit.
func FormatWarrantDigest(pairings []entity.WarrantPairing, runAt time.Time) []string {
	if len(pairings) == 0 {
		return []string{"Tidak ada data waran aktif untuk hari ini."}
	}

	var messages []string
	var current strings.Builder
	part := 1

	startNewPart := func() {
		current.Reset()
		if part == 1 {
			current.WriteString(fmt.Sprintf("📜 *Waran Aktif* (%d)\n🕒 %s\n\n", len(pairings), utils.PrettyDate(runAt)))
		} else {
			current.WriteString(fmt.Sprintf("---*Lanjutan Waran Aktif Part %d*---\n\n", part))
		}
	}
	startNewPart()

	for _, p := range pairings {
		entry := fmt.Sprintf("• `%s` %s | induk %s\n", p.Symbol, utils.FormatRupiah(p.Price), utils.FormatRupiah(p.ParentPrice))
		if current.Len()+len(entry) > maxMessageLen {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry)
	}
	return append(messages, current.String())
}

// FormatErrorAlertMessage formats a failed job run.
func FormatErrorAlertMessage(at time.Time, errType string, errMsg string, data string) string {
	return fmt.Sprintf(`📛 [ERROR ALERT]
%s
🔧 %s
⚠️ %s

📄 Data: %s
`, utils.PrettyDate(at), errType, errMsg, data)
}
