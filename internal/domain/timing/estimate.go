package timing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"scenesync/internal/types"
)

const (
	// MaxTimingVariance is the per-scene audio/clip variance (seconds) still
	// considered a good fit. The whole-pipeline validity threshold scales it
	// by scene count.
	MaxTimingVariance = 0.5

	// DefaultWordsPerSecond is the assumed narration rate used when a scene
	// has no measured timing.
	DefaultWordsPerSecond = 2.5

	// Allowed discrete clip lengths requested from the video collaborator.
	minClipSeconds = 5
	maxClipSeconds = 6

	// Quantizer cut points: below the floor the audio is short enough that a
	// 5s clip always works; above the ceiling we stop extrapolating and cap
	// at the longest asset.
	shortSceneFloor = 4.0
	longSceneCeil   = 6.5
)

var (
	// ErrMalformedTiming flags a timing span with a negative duration or an
	// end before its start.
	ErrMalformedTiming = errors.New("malformed scene timing")

	// ErrDuplicateTiming flags two timing spans claiming the same scene.
	ErrDuplicateTiming = errors.New("duplicate scene timing")
)

// ChooseClipDuration quantizes an audio duration onto the allowed clip set.
// This is intentionally not a pure nearest-neighbor rule: short scenes floor
// to 5, overlong scenes cap at 6, and only the [4, 6.5] band picks the
// nearest value, with the 5.5 tie resolving to 6.
func ChooseClipDuration(audioDuration float64) int {
	if audioDuration <= 0 {
		return minClipSeconds
	}
	if audioDuration < shortSceneFloor {
		return minClipSeconds
	}
	if audioDuration > longSceneCeil {
		return maxClipSeconds
	}
	if math.Abs(audioDuration-minClipSeconds) < math.Abs(audioDuration-maxClipSeconds) {
		return minClipSeconds
	}
	return maxClipSeconds
}

// ClassifyStatus grades a measured scene by its absolute audio/clip variance.
func ClassifyStatus(audioDuration float64, clipDuration int) types.TimingStatus {
	variance := math.Abs(audioDuration - float64(clipDuration))
	switch {
	case variance <= 0.3:
		return types.StatusPerfect
	case variance <= MaxTimingVariance:
		return types.StatusGood
	case variance <= 1.0:
		return types.StatusAcceptable
	default:
		return types.StatusWarning
	}
}

// EstimateAudioDuration guesses speech length from word count at the given
// narration rate. Rates <= 0 fall back to DefaultWordsPerSecond.
func EstimateAudioDuration(text string, wordsPerSecond float64) float64 {
	if wordsPerSecond <= 0 {
		wordsPerSecond = DefaultWordsPerSecond
	}
	return float64(WordCount(text)) / wordsPerSecond
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ComputeEnhancedScenes pairs every scene with its measured timing (or a
// word-count estimate when none exists) and chooses a clip duration for it.
// Output preserves input order, one enhanced scene per input scene, and the
// caller's scenes are copied, never mutated.
//
// Timings are indexed by scene number up front; duplicates and spans with
// negative durations or end < start fail fast instead of propagating
// nonsensical variances downstream.
func ComputeEnhancedScenes(scenes []types.Scene, timings []types.SceneTiming, wordsPerSecond float64) ([]types.EnhancedScene, error) {
	byScene := make(map[int]types.SceneTiming, len(timings))
	for _, tm := range timings {
		if tm.Duration < 0 || tm.End < tm.Start {
			return nil, fmt.Errorf("%w: scene %d (start=%.2f end=%.2f duration=%.2f)",
				ErrMalformedTiming, tm.SceneNumber, tm.Start, tm.End, tm.Duration)
		}
		if _, ok := byScene[tm.SceneNumber]; ok {
			return nil, fmt.Errorf("%w: scene %d", ErrDuplicateTiming, tm.SceneNumber)
		}
		byScene[tm.SceneNumber] = tm
	}

	out := make([]types.EnhancedScene, 0, len(scenes))
	for _, sc := range scenes {
		tm, measured := byScene[sc.SceneNumber]

		var audio float64
		if measured {
			audio = tm.Duration
		} else {
			audio = EstimateAudioDuration(sc.Text, wordsPerSecond)
		}

		clip := ChooseClipDuration(audio)

		status := types.StatusEstimated
		if measured {
			status = ClassifyStatus(audio, clip)
		}

		out = append(out, types.EnhancedScene{
			Scene:          sc,
			AudioDuration:  audio,
			ClipDuration:   clip,
			TimingVariance: audio - float64(clip),
			TimingStatus:   status,
			Estimated:      !measured,
		})
	}
	return out, nil
}
