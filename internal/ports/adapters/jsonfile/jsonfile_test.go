package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

const scenesJSON = `[
  {"scene_number": 1, "text": "What remains of a ship rebuilt plank by plank", "visual_description": "ancient harbor", "key_concept": "identity"},
  {"scene_number": 2, "text": "Theseus sails on"}
]`

const timingsJSON = `[
  {"scene_number": 1, "start": 0, "end": 4.2, "duration": 4.2},
  {"scene_number": 2, "start": 4.2, "end": 9.5, "duration": 5.3}
]`

func TestAdapter_ReadsScenesAndTimings(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	a := New(
		writeFixture(t, tmp, "scenes.json", scenesJSON),
		writeFixture(t, tmp, "timings.json", timingsJSON),
	)

	scenes, err := a.Scenes(context.Background())
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}
	if len(scenes) != 2 || scenes[0].SceneNumber != 1 || scenes[0].KeyConcept != "identity" {
		t.Fatalf("unexpected scenes: %+v", scenes)
	}

	timings, err := a.Timings(context.Background())
	if err != nil {
		t.Fatalf("timings: %v", err)
	}
	if len(timings) != 2 || timings[1].Duration != 5.3 {
		t.Fatalf("unexpected timings: %+v", timings)
	}
}

func TestAdapter_MissingTimingsIsNotAnError(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()
	scenes := writeFixture(t, tmp, "scenes.json", scenesJSON)

	tests := []struct {
		name        string
		timingsPath string
	}{
		{"no path given", ""},
		{"file absent", filepath.Join(tmp, "nope.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(scenes, tt.timingsPath)
			timings, err := a.Timings(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if timings != nil {
				t.Fatalf("expected nil timings, got %+v", timings)
			}
		})
	}
}

func TestAdapter_Errors(t *testing.T) {
	t.Parallel()
	tmp := t.TempDir()

	a := New(filepath.Join(tmp, "absent.json"), "")
	if _, err := a.Scenes(context.Background()); err == nil {
		t.Fatalf("expected error for missing scenes file")
	}

	bad := New(
		writeFixture(t, tmp, "bad_scenes.json", "{not json"),
		writeFixture(t, tmp, "bad_timings.json", "{not json"),
	)
	if _, err := bad.Scenes(context.Background()); err == nil {
		t.Fatalf("expected parse error for scenes")
	}
	if _, err := bad.Timings(context.Background()); err == nil {
		t.Fatalf("expected parse error for timings")
	}
}
