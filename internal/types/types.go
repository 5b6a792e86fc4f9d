package types

// TimingStatus classifies how well a scene's audio fits its chosen clip.
type TimingStatus string

const (
	StatusPerfect    TimingStatus = "perfect"
	StatusGood       TimingStatus = "good"
	StatusAcceptable TimingStatus = "acceptable"
	StatusWarning    TimingStatus = "warning"
	StatusEstimated  TimingStatus = "estimated"
)

// AllStatuses lists every TimingStatus in severity order so status breakdowns
// render deterministically.
var AllStatuses = []TimingStatus{
	StatusPerfect,
	StatusGood,
	StatusAcceptable,
	StatusWarning,
	StatusEstimated,
}

// AdjustmentDirection says which way the assembled video must be stretched to
// match total narration length.
type AdjustmentDirection string

const (
	DirectionSpeedUp  AdjustmentDirection = "speed_up"
	DirectionSlowDown AdjustmentDirection = "slow_down"
	DirectionNone     AdjustmentDirection = "none"
)

// AdjustmentQuality grades how large the required global speed adjustment is.
type AdjustmentQuality string

const (
	QualityPerfect    AdjustmentQuality = "perfect"
	QualityGood       AdjustmentQuality = "good"
	QualityAcceptable AdjustmentQuality = "acceptable"
	QualityPoor       AdjustmentQuality = "poor"
	QualityUnknown    AdjustmentQuality = "unknown"
)

// Scene is one narrated segment of the script, produced by the script
// generator. VisualDescription and KeyConcept are passthrough data for the
// image/video collaborators; timing never reads them.
type Scene struct {
	SceneNumber       int    `json:"scene_number"`
	Text              string `json:"text"`
	VisualDescription string `json:"visual_description,omitempty"`
	KeyConcept        string `json:"key_concept,omitempty"`
}

// SceneTiming is the measured word-level timestamp span for one scene, cut
// from the full narration track by the TTS collaborator.
type SceneTiming struct {
	SceneNumber int     `json:"scene_number"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Duration    float64 `json:"duration"`
}

// EnhancedScene is a Scene plus computed timing fields. The original scene is
// copied, never mutated.
type EnhancedScene struct {
	Scene

	AudioDuration  float64      `json:"audio_duration"`
	ClipDuration   int          `json:"clip_duration"`
	TimingVariance float64      `json:"timing_variance"`
	TimingStatus   TimingStatus `json:"timing_status"`
	Estimated      bool         `json:"estimated"`
}

// ValidationReport is an aggregate snapshot over one run's enhanced scenes.
type ValidationReport struct {
	TotalAudioDuration float64              `json:"total_audio_duration"`
	TotalClipDuration  int                  `json:"total_clip_duration"`
	OverallVariance    float64              `json:"overall_variance"`
	SceneCount         int                  `json:"scene_count"`
	Warnings           []string             `json:"warnings,omitempty"`
	IsValid            bool                 `json:"is_valid"`
	ScenesByStatus     map[TimingStatus]int `json:"scenes_by_status"`

	SpeedAdjustmentPct  float64             `json:"speed_adjustment_pct"`
	AdjustmentDirection AdjustmentDirection `json:"adjustment_direction"`
	AdjustmentQuality   AdjustmentQuality   `json:"adjustment_quality"`
	AdjustmentNote      string              `json:"adjustment_note"`
}

// SuggestionIssue names why a scene's script needs a word-count edit.
type SuggestionIssue string

const (
	IssueTooLong  SuggestionIssue = "too_long"
	IssueTooShort SuggestionIssue = "too_short"
)

// Suggestion is a proposed script edit for a scene whose narration does not
// fit its clip, meant to feed a future script regeneration.
type Suggestion struct {
	SceneNumber  int             `json:"scene_number"`
	Issue        SuggestionIssue `json:"issue"`
	CurrentWords int             `json:"current_words"`
	TargetWords  int             `json:"target_words"`
	Action       string          `json:"action"`
	Variance     float64         `json:"variance"`
}
