package report

import (
	"os"

	"github.com/rs/zerolog"

	"scenesync/internal/types"
)

// Audit is the append-only validation log sink. It is constructed once per
// run by the orchestrator and injected where needed; there is no package
// global. Writes are append-mode single lines, so concurrent pipeline runs
// pointed at the same file interleave whole records.
type Audit struct {
	log  zerolog.Logger
	file *os.File
}

// NewAudit opens path in append mode and builds a timestamped logger over it.
// A log sink failure is diagnostic, not fatal: when the file cannot be opened
// (or path is empty) the sink falls back to stderr and the pipeline carries
// on.
func NewAudit(path string) *Audit {
	if path == "" {
		return &Audit{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Warn().Err(err).Str("path", path).Msg("audit log unavailable, falling back to stderr")
		return &Audit{log: l}
	}
	return &Audit{
		log:  zerolog.New(f).With().Timestamp().Logger(),
		file: f,
	}
}

// Close releases the underlying file, if any.
func (a *Audit) Close() error {
	if a.file == nil {
		return nil
	}
	return a.file.Close()
}

// LogValidation appends one run's validation record: a header with the topic,
// a summary line, warning-level lines for poorly fitting scenes, debug-level
// per-scene detail, and an error line when the run failed validation.
func (a *Audit) LogValidation(topic string, enhanced []types.EnhancedScene, rep types.ValidationReport, audioPath string) {
	header := a.log.Info().
		Str("topic", topic).
		Int("scenes", rep.SceneCount)
	if audioPath != "" {
		header = header.Str("audio", audioPath)
	}
	header.Msg("timing validation")

	a.log.Info().
		Float64("audio_total_sec", rep.TotalAudioDuration).
		Int("clip_total_sec", rep.TotalClipDuration).
		Float64("drift_sec", rep.OverallVariance).
		Str("direction", string(rep.AdjustmentDirection)).
		Float64("adjustment_pct", rep.SpeedAdjustmentPct).
		Str("quality", string(rep.AdjustmentQuality)).
		Bool("valid", rep.IsValid).
		Msg("summary")

	for _, warn := range rep.Warnings {
		a.log.Warn().Str("topic", topic).Msg(warn)
	}

	for _, e := range enhanced {
		a.log.Debug().
			Int("scene", e.SceneNumber).
			Float64("audio_sec", e.AudioDuration).
			Int("clip_sec", e.ClipDuration).
			Float64("variance_sec", e.TimingVariance).
			Str("status", string(e.TimingStatus)).
			Bool("estimated", e.Estimated).
			Msg("scene timing")
	}

	if !rep.IsValid {
		a.log.Error().
			Str("topic", topic).
			Float64("drift_sec", rep.OverallVariance).
			Msg("timing drift exceeds validity threshold")
	}
}
