package timing

import (
	"fmt"
	"math"

	"scenesync/internal/types"
)

// SuggestAdjustments proposes word-count edits for scenes whose narration
// fits their clip poorly, sized so a regenerated script lands near the clip
// budget at the given narration rate. Only measured scenes classified warning
// or acceptable with a nonzero variance are considered; estimated scenes have
// no reliable variance to act on.
func SuggestAdjustments(enhanced []types.EnhancedScene, wordsPerSecond float64) []types.Suggestion {
	if wordsPerSecond <= 0 {
		wordsPerSecond = DefaultWordsPerSecond
	}

	var out []types.Suggestion
	for _, e := range enhanced {
		if e.TimingStatus != types.StatusWarning && e.TimingStatus != types.StatusAcceptable {
			continue
		}
		if e.TimingVariance == 0 {
			continue
		}

		current := WordCount(e.Text)
		target := int(math.Floor(float64(e.ClipDuration) * wordsPerSecond))

		switch {
		case e.TimingVariance > 0:
			out = append(out, types.Suggestion{
				SceneNumber:  e.SceneNumber,
				Issue:        types.IssueTooLong,
				CurrentWords: current,
				TargetWords:  target,
				Action:       shortenAction(current, target, e.TimingVariance),
				Variance:     e.TimingVariance,
			})
		case math.Abs(e.TimingVariance) > 1.0:
			out = append(out, types.Suggestion{
				SceneNumber:  e.SceneNumber,
				Issue:        types.IssueTooShort,
				CurrentWords: current,
				TargetWords:  target,
				Action:       lengthenAction(current, target, e.TimingVariance),
				Variance:     e.TimingVariance,
			})
		default:
			// Small negative variance: the clip slightly outlasts the audio,
			// which assembly absorbs without a script edit.
		}
	}
	return out
}

// shortenAction words the edit for a time-too-long scene. When the scene is
// already at or under the word budget the overage comes from narration pace,
// not word count, so cutting words would be the wrong advice.
func shortenAction(current, target int, variance float64) string {
	remove := current - target
	if remove <= 0 {
		return fmt.Sprintf("Tighten narration pacing (audio runs %.1fs long at %d words)", variance, current)
	}
	return fmt.Sprintf("Remove ~%d words", remove)
}

func lengthenAction(current, target int, variance float64) string {
	add := target - current
	if add <= 0 {
		return fmt.Sprintf("Slow narration pacing (audio runs %.1fs short at %d words)", -variance, current)
	}
	return fmt.Sprintf("Add ~%d words", add)
}
