package timing

import (
	"fmt"
	"math"

	"scenesync/internal/types"
)

// Validate aggregates per-scene timing into whole-pipeline statistics: total
// audio vs clip time, per-status counts, warning lines, and the uniform
// speed-adjustment factor the video assembler applies to the concatenated
// sequence. It never mutates its input.
//
// An empty scene list is vacuously valid: there is nothing to drift.
func Validate(enhanced []types.EnhancedScene) types.ValidationReport {
	rep := types.ValidationReport{
		SceneCount:     len(enhanced),
		ScenesByStatus: make(map[types.TimingStatus]int, len(types.AllStatuses)),
	}
	for _, st := range types.AllStatuses {
		rep.ScenesByStatus[st] = 0
	}

	for _, e := range enhanced {
		rep.TotalAudioDuration += e.AudioDuration
		rep.TotalClipDuration += e.ClipDuration
		rep.ScenesByStatus[e.TimingStatus]++
		if e.TimingStatus == types.StatusWarning {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf(
				"Scene %d: Audio %.1fs vs Clip %ds (variance: %+.1fs)",
				e.SceneNumber, e.AudioDuration, e.ClipDuration, e.TimingVariance))
		}
	}

	rep.OverallVariance = rep.TotalAudioDuration - float64(rep.TotalClipDuration)
	if rep.SceneCount == 0 {
		rep.IsValid = true
	} else {
		rep.IsValid = math.Abs(rep.OverallVariance) < float64(rep.SceneCount)*MaxTimingVariance
	}

	deriveAdjustment(&rep)
	return rep
}

// deriveAdjustment fills the global speed-adjustment fields. The ratio is only
// meaningful when both totals are positive; otherwise the report carries an
// explicit unknown instead of a divide-by-zero.
func deriveAdjustment(rep *types.ValidationReport) {
	if rep.TotalAudioDuration <= 0 || rep.TotalClipDuration <= 0 {
		rep.SpeedAdjustmentPct = 0
		rep.AdjustmentDirection = types.DirectionNone
		rep.AdjustmentQuality = types.QualityUnknown
		rep.AdjustmentNote = "No speed adjustment computed (missing durations)"
		return
	}

	speedFactor := float64(rep.TotalClipDuration) / rep.TotalAudioDuration
	rep.SpeedAdjustmentPct = math.Abs(1-speedFactor) * 100

	switch {
	case rep.SpeedAdjustmentPct <= 5:
		rep.AdjustmentQuality = types.QualityPerfect
	case rep.SpeedAdjustmentPct <= 10:
		rep.AdjustmentQuality = types.QualityGood
	case rep.SpeedAdjustmentPct <= 20:
		rep.AdjustmentQuality = types.QualityAcceptable
	default:
		rep.AdjustmentQuality = types.QualityPoor
	}

	if rep.TotalAudioDuration > float64(rep.TotalClipDuration) {
		rep.AdjustmentDirection = types.DirectionSlowDown
		rep.AdjustmentNote = fmt.Sprintf(
			"Slow the assembled video down by %.1f%% to match narration", rep.SpeedAdjustmentPct)
	} else {
		rep.AdjustmentDirection = types.DirectionSpeedUp
		rep.AdjustmentNote = fmt.Sprintf(
			"Speed the assembled video up by %.1f%% to match narration", rep.SpeedAdjustmentPct)
	}
}
