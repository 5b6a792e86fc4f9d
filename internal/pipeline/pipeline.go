package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"scenesync/internal/ports"
	"scenesync/internal/ports/adapters/jsonfile"
	"scenesync/internal/report"
	"scenesync/internal/usecase"
)

type Config struct {
	// ScenesPath is the script generator's scene list (JSON array).
	ScenesPath string
	// TimingsPath is the TTS word-timestamp extraction (JSON array). Optional:
	// without it every scene is estimated from word count.
	TimingsPath string
	// AudioPath is recorded in the audit trail only; the audio itself is
	// never opened here.
	AudioPath string

	Topic    string
	OutDir   string
	AuditLog string

	WordsPerSecond float64

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.ScenesPath == "" {
		return errors.New("scenes path is empty")
	}
	if _, err := os.Stat(c.ScenesPath); err != nil {
		return fmt.Errorf("stat scenes: %w", err)
	}
	if c.Topic == "" {
		return errors.New("topic is empty")
	}
	if c.WordsPerSecond < 0 {
		return errors.New("words per second must be >= 0")
	}
	return nil
}

// Run executes one validation pass: read the collaborator artifacts, compute
// enhanced scenes and the pipeline report, render and audit them, and write
// the run's JSON artifacts for the video assembler. A failing validation is
// reported but does not fail the run; malformed inputs do.
func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	runDir := buildRunOutDir(outDir, cfg.Topic, time.Now().UTC())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return err
	}
	logf("run dir: %s", runDir)

	audit := report.NewAudit(cfg.AuditLog)
	defer audit.Close()

	src := jsonfile.New(cfg.ScenesPath, cfg.TimingsPath)
	uc := usecase.New(usecase.Deps{
		Scenes:  src,
		Timings: src,
		Out:     os.Stdout,
		Audit:   audit,
	})

	res, err := uc.Run(ctx, usecase.Input{
		Topic:          cfg.Topic,
		AudioPath:      cfg.AudioPath,
		WordsPerSecond: cfg.WordsPerSecond,
	})
	if err != nil {
		return err
	}

	if err := writeJSON(filepath.Join(runDir, "enhanced_scenes.json"), res.Enhanced); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(runDir, "report.json"), res.Report); err != nil {
		return err
	}
	if len(res.Suggestions) > 0 {
		if err := writeJSON(filepath.Join(runDir, "suggestions.json"), res.Suggestions); err != nil {
			return err
		}
		logf("suggested edits for %d scenes", len(res.Suggestions))
	}

	if res.Valid {
		logf("timing valid: drift %+.2fs over %d scenes", res.Report.OverallVariance, res.Report.SceneCount)
	} else {
		logf("timing INVALID: drift %+.2fs over %d scenes (see %s)",
			res.Report.OverallVariance, res.Report.SceneCount, cfg.AuditLog)
	}
	return nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, b, 0o644)
}

func buildRunOutDir(outRoot, topic string, now time.Time) string {
	name := normalizePathSegment(topic)
	if name == "" {
		name = "run"
	}
	ts := now.UTC().Format("20060102-150405Z")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return filepath.Join(outRoot, fmt.Sprintf("%s-%s-%s", name, ts, suffix))
}

func normalizePathSegment(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// ensure the adapter satisfies both source ports
var _ ports.SceneSource = (*jsonfile.Adapter)(nil)
var _ ports.TimingSource = (*jsonfile.Adapter)(nil)
