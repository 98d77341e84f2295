package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/relsum/pkg/domain/model"
)

func resultOf[T any](s model.StepStatus) model.StepResult[T] {
	var zero T
	switch s {
	case model.StepSuccess:
		return model.StepSucceeded(zero, time.Millisecond)
	case model.StepFailed:
		return model.StepFailedWith[T]("boom", time.Millisecond)
	case model.StepPending:
		return model.StepPendingResult[T]()
	default:
		return model.StepSkippedResult[T]()
	}
}

func TestStepResultAccessors(t *testing.T) {
	t.Run("success carries data", func(t *testing.T) {
		r := model.StepSucceeded("value", 3*time.Millisecond)
		v, ok := r.Data()
		gt.True(t, ok)
		gt.V(t, v).Equal("value")
		gt.V(t, r.Err()).Equal("")
		gt.V(t, r.Duration()).Equal(3 * time.Millisecond)
	})

	t.Run("failed hides data", func(t *testing.T) {
		r := model.StepFailedWith[string]("broken", time.Millisecond)
		_, ok := r.Data()
		gt.False(t, ok)
		gt.V(t, r.Err()).Equal("broken")
		gt.True(t, r.Failed())
	})

	t.Run("skipped has zero duration", func(t *testing.T) {
		r := model.StepSkippedResult[int]()
		gt.V(t, r.Status()).Equal(model.StepSkipped)
		gt.V(t, r.Duration()).Equal(time.Duration(0))
	})

	t.Run("negative duration is clamped", func(t *testing.T) {
		r := model.StepSucceeded(1, -time.Second)
		gt.V(t, r.Duration()).Equal(time.Duration(0))
	})
}

func TestStepResultJSON(t *testing.T) {
	t.Run("success encodes data but not error", func(t *testing.T) {
		raw := gt.R1(json.Marshal(model.StepSucceeded(map[string]int{"a": 1}, 1500*time.Microsecond))).NoError(t)
		var v map[string]any
		gt.NoError(t, json.Unmarshal(raw, &v))
		gt.V(t, v["status"]).Equal(any("success"))
		gt.V(t, v["durationMs"]).Equal(any(float64(1)))
		_, hasErr := v["error"]
		gt.False(t, hasErr)
		_, hasData := v["data"]
		gt.True(t, hasData)
	})

	t.Run("failed encodes error but not data", func(t *testing.T) {
		raw := gt.R1(json.Marshal(model.StepFailedWith[*model.FixVersion]("no version", 0))).NoError(t)
		var v map[string]any
		gt.NoError(t, json.Unmarshal(raw, &v))
		gt.V(t, v["error"]).Equal(any("no version"))
		_, hasData := v["data"]
		gt.False(t, hasData)
	})

	t.Run("round trip", func(t *testing.T) {
		src := model.StepSucceeded(&model.FixVersion{Name: "1.2.0"}, 2*time.Millisecond)
		raw := gt.R1(json.Marshal(src)).NoError(t)

		var dst model.StepResult[*model.FixVersion]
		gt.NoError(t, json.Unmarshal(raw, &dst))
		v, ok := dst.Data()
		gt.True(t, ok)
		gt.V(t, v.Name).Equal("1.2.0")
		gt.V(t, dst.Duration()).Equal(2 * time.Millisecond)
	})
}

func TestOverallStatusClassification(t *testing.T) {
	all := []model.StepStatus{model.StepPending, model.StepSkipped, model.StepSuccess, model.StepFailed}

	var combos int
	for _, s1 := range all {
		for _, s2 := range all {
			for _, s3 := range all {
				for _, s4 := range all {
					for _, s5 := range all {
						for _, s6 := range all {
							steps := &model.ReleaseSummarySteps{
								FixVersionResolution: resultOf[*model.FixVersion](s1),
								IssueSearch:          resultOf[*model.IssueSearchResult](s2),
								ParentFeatures:       resultOf[*model.ParentFeatures](s3),
								BranchDiscovery:      resultOf[*model.BranchDiscovery](s4),
								LogDownload:          resultOf[*model.DeployLog](s5),
								PayloadExtraction:    resultOf[*model.DeployPayload](s6),
							}

							got := steps.OverallStatus()
							switch {
							case s1 == model.StepFailed || s2 == model.StepFailed:
								gt.V(t, got).Equal(model.OverallFailed)
							case s1 == model.StepSuccess && s2 == model.StepSuccess && s3 == model.StepSuccess &&
								s4 == model.StepSuccess && s5 == model.StepSuccess && s6 == model.StepSuccess:
								gt.V(t, got).Equal(model.OverallComplete)
							default:
								gt.V(t, got).Equal(model.OverallPartial)
							}
							combos++
						}
					}
				}
			}
		}
	}
	gt.V(t, combos).Equal(4096)
}

func TestNewReleaseSummarySteps(t *testing.T) {
	steps := model.NewReleaseSummarySteps()
	for _, s := range steps.Statuses() {
		gt.V(t, s).Equal(model.StepSkipped)
	}
	gt.V(t, steps.OverallStatus()).Equal(model.OverallPartial)
}
