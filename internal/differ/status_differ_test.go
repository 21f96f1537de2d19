package differ

import (
	"testing"
	"time"

	"github.com/aleister1102/metrowatch/internal/common/timeutils"
	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedInstant = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

func newTestDiffer() *StatusDiffer {
	return NewStatusDiffer(timeutils.FixedClock(fixedInstant), zerolog.Nop())
}

func line(code, status string) models.LineStatus {
	return models.LineStatus{Code: code, DisplayName: "Line " + code, Status: status}
}

func TestStatusDiffer_FirstRunSeedsBaseline(t *testing.T) {
	result := newTestDiffer().Diff(models.Snapshot{}, []models.LineStatus{
		line("1", "Operação Normal"),
		line("2", "Operação Normal"),
	})

	assert.Empty(t, result.Events)
	assert.True(t, result.PriorWasEmpty)
	assert.True(t, result.ShouldPersist())
	assert.Equal(t, models.Snapshot{"L1": "Operação Normal", "L2": "Operação Normal"}, result.Next)
	assert.Equal(t, []string{"1", "2"}, result.NewLines)
}

func TestStatusDiffer_NilPriorIsEmpty(t *testing.T) {
	result := newTestDiffer().Diff(nil, []models.LineStatus{line("1", "Operação Normal")})

	assert.True(t, result.PriorWasEmpty)
	assert.Equal(t, models.Snapshot{"L1": "Operação Normal"}, result.Next)
}

func TestStatusDiffer_SingleTransition(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal", "L2": "Operação Normal"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{
		line("1", "Operação Normal"),
		line("2", "Velocidade Reduzida"),
	})

	require.Len(t, result.Events, 1)
	event := result.Events[0]
	assert.Equal(t, "2", event.Line.Code)
	assert.Equal(t, "Operação Normal", event.PreviousStatus)
	assert.Equal(t, "Velocidade Reduzida", event.NewStatus)
	assert.Equal(t, timeutils.OperatorZone, event.DetectedAt.Location())
	assert.True(t, event.DetectedAt.Equal(fixedInstant))
	assert.Equal(t, "Velocidade Reduzida", result.Next["L2"])
	assert.True(t, result.ShouldPersist())
}

func TestStatusDiffer_DoesNotMutatePrior(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal"}

	newTestDiffer().Diff(prior, []models.LineStatus{line("1", "Paralisada"), line("9", "Operação Normal")})

	assert.Equal(t, models.Snapshot{"L1": "Operação Normal"}, prior)
}

func TestStatusDiffer_IdempotentOnUnchangedInput(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal", "L2": "Paralisada"}
	fresh := []models.LineStatus{line("1", "Operação Normal"), line("2", "Paralisada")}

	result := newTestDiffer().Diff(prior, fresh)

	assert.Empty(t, result.Events)
	assert.False(t, result.ShouldPersist())
	assert.Equal(t, prior, result.Next)
}

func TestStatusDiffer_NewLineOnNonFirstRun(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{line("1", "Operação Normal"), line("17", "Operação Normal")})

	assert.Empty(t, result.Events)
	assert.Equal(t, []string{"17"}, result.NewLines)
	assert.Equal(t, "Operação Normal", result.Next["L17"])
	assert.False(t, result.ShouldPersist())
}

func TestStatusDiffer_EmptyStoredStatusIsBaseline(t *testing.T) {
	prior := models.Snapshot{"L1": "", "L2": "Operação Normal"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{line("1", "Paralisada"), line("2", "Operação Normal")})

	assert.Empty(t, result.Events)
	assert.Equal(t, "Paralisada", result.Next["L1"])
	assert.Equal(t, []string{"1"}, result.NewLines)
}

func TestStatusDiffer_CarriesForwardMissingLines(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal", "L4": "Paralisada"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{line("1", "Velocidade Reduzida")})

	require.Len(t, result.Events, 1)
	assert.Equal(t, "Paralisada", result.Next["L4"])
	assert.Equal(t, "Velocidade Reduzida", result.Next["L1"])
}

func TestStatusDiffer_KeepsUnmappedKeys(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal", "Linha Estranha": "Paralisada"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{line("1", "Operação Normal")})

	assert.Equal(t, "Paralisada", result.Next["Linha Estranha"])
}

func TestStatusDiffer_PreservesFeedOrder(t *testing.T) {
	prior := models.Snapshot{"L1": "a", "L2": "a", "L3": "a"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{line("3", "b"), line("1", "b"), line("2", "b")})

	require.Len(t, result.Events, 3)
	assert.Equal(t, "3", result.Events[0].Line.Code)
	assert.Equal(t, "1", result.Events[1].Line.Code)
	assert.Equal(t, "2", result.Events[2].Line.Code)
}

func TestStatusDiffer_DuplicateCodesWithinPayload(t *testing.T) {
	prior := models.Snapshot{"L1": "Operação Normal"}

	result := newTestDiffer().Diff(prior, []models.LineStatus{
		line("1", "Paralisada"),
		line("1", "Paralisada"),
		line("1", "Operação Normal"),
	})

	require.Len(t, result.Events, 2)
	assert.Equal(t, "Operação Normal", result.Events[0].PreviousStatus)
	assert.Equal(t, "Paralisada", result.Events[0].NewStatus)
	assert.Equal(t, "Paralisada", result.Events[1].PreviousStatus)
	assert.Equal(t, "Operação Normal", result.Events[1].NewStatus)
	assert.Equal(t, "Operação Normal", result.Next["L1"])
}

func TestStatusDiffer_EventCountMatchesChangedKeys(t *testing.T) {
	prior := models.Snapshot{"L1": "a", "L2": "a", "L3": "a", "L4": "a"}
	fresh := []models.LineStatus{line("1", "a"), line("2", "b"), line("3", "a"), line("4", "c"), line("5", "a")}

	result := newTestDiffer().Diff(prior, fresh)

	changed := 0
	for key, status := range prior {
		if result.Next[key] != status {
			changed++
		}
	}
	assert.Len(t, result.Events, changed)
}

func TestDiffResult_ShouldPersist(t *testing.T) {
	event := models.TransitionEvent{Line: line("1", "b"), PreviousStatus: "a", NewStatus: "b"}

	tests := []struct {
		name          string
		events        []models.TransitionEvent
		priorWasEmpty bool
		want          bool
	}{
		{name: "no events, prior present", want: false},
		{name: "no events, prior empty", priorWasEmpty: true, want: true},
		{name: "events, prior present", events: []models.TransitionEvent{event}, want: true},
		{name: "events, prior empty", events: []models.TransitionEvent{event}, priorWasEmpty: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DiffResult{Events: tt.events, PriorWasEmpty: tt.priorWasEmpty}
			assert.Equal(t, tt.want, result.ShouldPersist())
		})
	}
}
