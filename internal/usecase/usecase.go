package usecase

import (
	"context"
	"io"

	"scenesync/internal/domain/timing"
	"scenesync/internal/ports"
	"scenesync/internal/report"
	"scenesync/internal/types"
)

type Deps struct {
	Scenes  ports.SceneSource
	Timings ports.TimingSource
	Out     io.Writer
	Audit   *report.Audit
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Topic     string
	AudioPath string

	// WordsPerSecond calibrates the estimation fallback; <= 0 uses the
	// default narration rate.
	WordsPerSecond float64
}

type Result struct {
	Enhanced    []types.EnhancedScene
	Report      types.ValidationReport
	Valid       bool
	Suggestions []types.Suggestion
}

// Run is the end-to-end validation entry point: estimate per-scene timing,
// aggregate the pipeline report, render it, append the audit record, and
// suggest script edits for poorly fitting scenes. Callers branch on
// Result.Valid; an invalid report is diagnostic, not an error.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	scenes, err := u.d.Scenes.Scenes(ctx)
	if err != nil {
		return Result{}, err
	}
	timings, err := u.d.Timings.Timings(ctx)
	if err != nil {
		return Result{}, err
	}

	enhanced, err := timing.ComputeEnhancedScenes(scenes, timings, in.WordsPerSecond)
	if err != nil {
		return Result{}, err
	}
	rep := timing.Validate(enhanced)

	if u.d.Out != nil {
		report.Render(u.d.Out, enhanced, rep)
	}
	if u.d.Audit != nil {
		u.d.Audit.LogValidation(in.Topic, enhanced, rep, in.AudioPath)
	}

	return Result{
		Enhanced:    enhanced,
		Report:      rep,
		Valid:       rep.IsValid,
		Suggestions: timing.SuggestAdjustments(enhanced, in.WordsPerSecond),
	}, nil
}
