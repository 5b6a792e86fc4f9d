package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"scenesync/internal/types"
)

// Adapter reads the collaborator-produced JSON artifacts: the script
// generator's scene list and the TTS timestamp extractor's timing list.
type Adapter struct {
	scenesPath  string
	timingsPath string
}

func New(scenesPath, timingsPath string) *Adapter {
	return &Adapter{scenesPath: scenesPath, timingsPath: timingsPath}
}

func (a *Adapter) Scenes(_ context.Context) ([]types.Scene, error) {
	b, err := os.ReadFile(a.scenesPath)
	if err != nil {
		return nil, fmt.Errorf("read scenes: %w", err)
	}
	var scenes []types.Scene
	if err := json.Unmarshal(b, &scenes); err != nil {
		return nil, fmt.Errorf("parse scenes %s: %w", a.scenesPath, err)
	}
	return scenes, nil
}

// Timings returns nil when no timings file was given or the file does not
// exist: a pipeline run before audio rendering is expected to estimate from
// word counts instead.
func (a *Adapter) Timings(_ context.Context) ([]types.SceneTiming, error) {
	if a.timingsPath == "" {
		return nil, nil
	}
	b, err := os.ReadFile(a.timingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read timings: %w", err)
	}
	var timings []types.SceneTiming
	if err := json.Unmarshal(b, &timings); err != nil {
		return nil, fmt.Errorf("parse timings %s: %w", a.timingsPath, err)
	}
	return timings, nil
}
