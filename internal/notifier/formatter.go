package notifier

import (
	"fmt"
	"strings"

	"MetalWatch/internal/model"
)

// FormatSignalReport formats a full signal snapshot into a Telegram message.
func FormatSignalReport(snap *model.SignalSnapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🥇 <b>MetalWatch signal report</b> | %s\n\n", snap.GeneratedAt.Format("2006-01-02 15:04")))

	b.WriteString(fmt.Sprintf("🚦 <b>Composite:</b> %s (%.2f/5.0)\n\n", snap.Composite.Label, snap.Composite.Score))

	if rec := snap.Record("gold_silver_ratio"); rec != nil {
		b.WriteString(formatRatioLine("💰 Gold/Silver", rec))
	}
	if rec := snap.Record("copper_gold_ratio"); rec != nil {
		b.WriteString(formatRatioLine("🌡️ Copper/Gold", rec))
	}

	b.WriteString("\n📊 <b>Momentum:</b>\n")
	for _, rec := range snap.Records {
		if rec.Kind != model.KindMomentum {
			continue
		}
		day := 0.0
		if rec.DayChange != nil {
			day = *rec.DayChange
		}
		b.WriteString(fmt.Sprintf("  %s: %s (day %+.2f%%)\n    %s\n", rec.Key, rec.Label, day, rec.Rationale))
	}

	if rec := snap.Record("macro_environment"); rec != nil {
		b.WriteString(fmt.Sprintf("\n🌍 <b>Macro:</b> %s\n  %s\n", rec.Label, rec.Rationale))
	}

	return b.String()
}

func formatRatioLine(title string, rec *model.SignalRecord) string {
	ratio := 0.0
	if rec.Ratio != nil {
		ratio = *rec.Ratio
	}
	return fmt.Sprintf("%s: %.2f | %s\n  %s\n", title, ratio, rec.Label, rec.Rationale)
}

// FormatCompositeAlert formats a short message for a composite level change.
func FormatCompositeAlert(prev model.SignalLevel, snap *model.SignalSnapshot) string {
	return fmt.Sprintf("🔔 <b>Composite signal changed:</b> %s → %s (%.2f/5.0)",
		prev, snap.Composite.Level, snap.Composite.Score)
}

// FormatMacro formats just the macro-environment record.
func FormatMacro(snap *model.SignalSnapshot) string {
	rec := snap.Record("macro_environment")
	if rec == nil {
		return "no macro data available"
	}
	return fmt.Sprintf("🌍 <b>Macro environment:</b> %s (score %.0f)\n%s", rec.Label, rec.Score, rec.Rationale)
}
