package ports

import (
	"context"

	"scenesync/internal/types"
)

// SceneSource yields the narration scenes produced by the script generator.
type SceneSource interface {
	Scenes(ctx context.Context) ([]types.Scene, error)
}

// TimingSource yields per-scene audio spans extracted from the TTS
// collaborator's word-level timestamps. A source may legitimately have no
// timings (audio not rendered yet); it returns nil rather than an error and
// the estimator falls back to word counts.
type TimingSource interface {
	Timings(ctx context.Context) ([]types.SceneTiming, error)
}
