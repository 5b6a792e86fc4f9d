package timing

import (
	"errors"
	"math"
	"strings"
	"testing"

	"scenesync/internal/types"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestChooseClipDuration_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		audio float64
		want  int
	}{
		{"zero", 0, 5},
		{"negative", -3.2, 5},
		{"just under floor", 3.99, 5},
		{"at floor nearest five", 4.0, 5},
		{"nearer five", 4.6, 5},
		{"just under midpoint", 5.49, 5},
		{"tie resolves to six", 5.5, 6},
		{"nearer six", 5.6, 6},
		{"at ceiling", 6.5, 6},
		{"just over ceiling", 6.51, 6},
		{"far over ceiling", 42.0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseClipDuration(tt.audio); got != tt.want {
				t.Fatalf("ChooseClipDuration(%v) = %d, want %d", tt.audio, got, tt.want)
			}
		})
	}
}

func TestChooseClipDuration_OnlyAllowedValues(t *testing.T) {
	for audio := -2.0; audio < 20; audio += 0.07 {
		got := ChooseClipDuration(audio)
		if got != 5 && got != 6 {
			t.Fatalf("ChooseClipDuration(%v) = %d, outside {5, 6}", audio, got)
		}
	}
}

func TestClassifyStatus_Bands(t *testing.T) {
	tests := []struct {
		name  string
		audio float64
		clip  int
		want  types.TimingStatus
	}{
		{"exact", 5.0, 5, types.StatusPerfect},
		{"inside perfect band", 5.3, 5, types.StatusPerfect},
		{"inside good band", 5.5, 5, types.StatusGood},
		{"negative variance good", 5.6, 6, types.StatusGood},
		{"inside acceptable band", 5.9, 5, types.StatusAcceptable},
		{"at acceptable edge", 7.0, 6, types.StatusAcceptable},
		{"warning", 7.2, 6, types.StatusWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStatus(tt.audio, tt.clip); got != tt.want {
				t.Fatalf("ClassifyStatus(%v, %d) = %s, want %s", tt.audio, tt.clip, got, tt.want)
			}
		})
	}
}

func TestEstimateAudioDuration(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 15))
	if got := EstimateAudioDuration(text, 0); !approx(got, 6.0) {
		t.Fatalf("15 words at default rate = %v, want 6.0", got)
	}
	if got := EstimateAudioDuration(text, 3); !approx(got, 5.0) {
		t.Fatalf("15 words at 3 wps = %v, want 5.0", got)
	}
	if got := EstimateAudioDuration("", 0); got != 0 {
		t.Fatalf("empty text = %v, want 0", got)
	}
}

func TestComputeEnhancedScenes_EstimationFallback(t *testing.T) {
	scenes := []types.Scene{{SceneNumber: 1, Text: strings.Repeat("word ", 15)}}

	out, err := ComputeEnhancedScenes(scenes, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 enhanced scene, got %d", len(out))
	}
	e := out[0]
	if !approx(e.AudioDuration, 6.0) {
		t.Fatalf("audio duration = %v, want 6.0", e.AudioDuration)
	}
	// A perfect numeric fit still reports estimated when no timing existed.
	if e.TimingStatus != types.StatusEstimated {
		t.Fatalf("status = %s, want estimated", e.TimingStatus)
	}
	if !e.Estimated {
		t.Fatalf("estimated flag not set")
	}
}

func TestComputeEnhancedScenes_OrderAndPassthrough(t *testing.T) {
	scenes := []types.Scene{
		{SceneNumber: 3, Text: "a b c", VisualDescription: "marble bust", KeyConcept: "stoicism"},
		{SceneNumber: 1, Text: "d e"},
		{SceneNumber: 2, Text: "f"},
	}
	timings := []types.SceneTiming{
		{SceneNumber: 1, Start: 0, End: 5, Duration: 5},
		{SceneNumber: 2, Start: 5, End: 10, Duration: 5},
		{SceneNumber: 3, Start: 10, End: 15, Duration: 5},
	}

	out, err := ComputeEnhancedScenes(scenes, timings, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(scenes) {
		t.Fatalf("expected %d scenes, got %d", len(scenes), len(out))
	}
	for i := range scenes {
		if out[i].SceneNumber != scenes[i].SceneNumber {
			t.Fatalf("scene %d: number %d, want %d", i, out[i].SceneNumber, scenes[i].SceneNumber)
		}
	}
	if out[0].VisualDescription != "marble bust" || out[0].KeyConcept != "stoicism" {
		t.Fatalf("passthrough fields not copied: %+v", out[0].Scene)
	}
	// Caller's scenes stay untouched.
	if scenes[0].Text != "a b c" || scenes[1].SceneNumber != 1 {
		t.Fatalf("input scenes mutated: %+v", scenes)
	}
}

func TestComputeEnhancedScenes_MeasuredClassification(t *testing.T) {
	scenes := []types.Scene{{SceneNumber: 1, Text: "x"}}
	timings := []types.SceneTiming{{SceneNumber: 1, Start: 0, End: 4.2, Duration: 4.2}}

	out, err := ComputeEnhancedScenes(scenes, timings, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := out[0]
	if e.ClipDuration != 5 {
		t.Fatalf("clip = %d, want 5", e.ClipDuration)
	}
	if !approx(e.TimingVariance, -0.8) {
		t.Fatalf("variance = %v, want -0.8", e.TimingVariance)
	}
	if e.TimingStatus != types.StatusAcceptable {
		t.Fatalf("status = %s, want acceptable", e.TimingStatus)
	}
	if e.Estimated {
		t.Fatalf("measured scene marked estimated")
	}
}

func TestComputeEnhancedScenes_RejectsBadTimings(t *testing.T) {
	scenes := []types.Scene{{SceneNumber: 1, Text: "x"}}

	tests := []struct {
		name    string
		timings []types.SceneTiming
		wantErr error
	}{
		{
			name: "negative duration",
			timings: []types.SceneTiming{
				{SceneNumber: 1, Start: 0, End: 4, Duration: -1},
			},
			wantErr: ErrMalformedTiming,
		},
		{
			name: "end before start",
			timings: []types.SceneTiming{
				{SceneNumber: 1, Start: 5, End: 4, Duration: 1},
			},
			wantErr: ErrMalformedTiming,
		},
		{
			name: "duplicate scene number",
			timings: []types.SceneTiming{
				{SceneNumber: 1, Start: 0, End: 4, Duration: 4},
				{SceneNumber: 1, Start: 4, End: 8, Duration: 4},
			},
			wantErr: ErrDuplicateTiming,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeEnhancedScenes(scenes, tt.timings, 0)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeEnhancedScenes_Deterministic(t *testing.T) {
	scenes := []types.Scene{
		{SceneNumber: 1, Text: "one two three four five six seven"},
		{SceneNumber: 2, Text: "eight nine ten"},
	}
	timings := []types.SceneTiming{{SceneNumber: 1, Start: 0, End: 5.1, Duration: 5.1}}

	first, err := ComputeEnhancedScenes(scenes, timings, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ComputeEnhancedScenes(scenes, timings, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("output differs between runs: %+v vs %+v", again[j], first[j])
			}
		}
	}
}
