package report

import (
	"fmt"
	"io"

	"scenesync/internal/types"
)

// statusMarks are the per-scene indicators used in the console report.
var statusMarks = map[types.TimingStatus]string{
	types.StatusPerfect:    "++",
	types.StatusGood:       "+",
	types.StatusAcceptable: "~",
	types.StatusWarning:    "!",
	types.StatusEstimated:  "?",
}

// Render writes the human-readable validation report: headline totals, the
// nonzero status breakdown, warning lines, then one line per scene in input
// order. Output is deterministic for a fixed input.
func Render(w io.Writer, enhanced []types.EnhancedScene, rep types.ValidationReport) {
	verdict := "FAIL"
	if rep.IsValid {
		verdict = "OK"
	}
	fmt.Fprintf(w, "Timing validation: %d scenes [%s]\n", rep.SceneCount, verdict)
	fmt.Fprintf(w, "  audio total:    %.2fs\n", rep.TotalAudioDuration)
	fmt.Fprintf(w, "  clip total:     %ds\n", rep.TotalClipDuration)
	fmt.Fprintf(w, "  drift:          %+.2fs\n", rep.OverallVariance)

	fmt.Fprintln(w, "Status breakdown:")
	for _, st := range types.AllStatuses {
		if n := rep.ScenesByStatus[st]; n > 0 {
			fmt.Fprintf(w, "  %-10s %d\n", st, n)
		}
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range rep.Warnings {
			fmt.Fprintf(w, "  %s\n", warn)
		}
	}

	fmt.Fprintln(w, "Scenes:")
	for _, e := range enhanced {
		fmt.Fprintf(w, "  scene %d: audio %.2fs  clip %ds  variance %+.2fs  [%s] %s\n",
			e.SceneNumber, e.AudioDuration, e.ClipDuration, e.TimingVariance,
			e.TimingStatus, statusMarks[e.TimingStatus])
	}

	fmt.Fprintf(w, "Speed adjustment: %s %.1f%% (%s)\n",
		rep.AdjustmentDirection, rep.SpeedAdjustmentPct, rep.AdjustmentQuality)
	fmt.Fprintf(w, "  %s\n", rep.AdjustmentNote)
}
