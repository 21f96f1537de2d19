package datastore

import (
	"testing"

	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{key: "L1", want: "L1", wantOK: true},
		{key: "L15", want: "L15", wantOK: true},
		{key: "L01", want: "L1", wantOK: true},
		{key: "Linha 1 - Azul", want: "L1", wantOK: true},
		{key: "Linha 5 - Lilás", want: "L5", wantOK: true},
		{key: "Linha 12", want: "L12", wantOK: true},
		{key: "Line 9 - Esmeralda", want: "L9", wantOK: true},
		{key: "3", want: "L3", wantOK: true},
		{key: " 4 ", want: "L4", wantOK: true},
		{key: "Expresso Turístico", wantOK: false},
		{key: "", wantOK: false},
		{key: "Lx", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := CanonicalKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigrateSnapshotKeys_RewritesLegacyKeys(t *testing.T) {
	input := models.Snapshot{
		"Linha 1 - Azul":    "Operação Normal",
		"Linha 2":           "Paralisada",
		"Line 3 - Vermelha": "Velocidade Reduzida",
		"4":                 "Operação Normal",
	}

	report := MigrateSnapshotKeys(input)

	assert.True(t, report.Changed())
	assert.Equal(t, models.Snapshot{
		"L1": "Operação Normal",
		"L2": "Paralisada",
		"L3": "Velocidade Reduzida",
		"L4": "Operação Normal",
	}, report.Snapshot)
	assert.Len(t, report.Rewrites, 4)
	assert.Empty(t, report.Unmapped)
	assert.Contains(t, input, "Linha 2", "input must not be modified")
}

func TestMigrateSnapshotKeys_CanonicalWins(t *testing.T) {
	report := MigrateSnapshotKeys(models.Snapshot{
		"L1":             "Operação Normal",
		"Linha 1 - Azul": "Paralisada",
	})

	assert.Equal(t, models.Snapshot{"L1": "Operação Normal"}, report.Snapshot)
	require.Len(t, report.Rewrites, 1)
	assert.True(t, report.Rewrites[0].Dropped)
	assert.Equal(t, "Linha 1 - Azul", report.Rewrites[0].From)
}

func TestMigrateSnapshotKeys_KeepsUnmappedKeys(t *testing.T) {
	report := MigrateSnapshotKeys(models.Snapshot{
		"L1":                 "Operação Normal",
		"Expresso Turístico": "Operação Encerrada",
	})

	assert.False(t, report.Changed())
	assert.Equal(t, []string{"Expresso Turístico"}, report.Unmapped)
	assert.Equal(t, "Operação Encerrada", report.Snapshot["Expresso Turístico"])
}

func TestMigrateSnapshotKeys_CanonicalSnapshotUnchanged(t *testing.T) {
	input := models.Snapshot{"L1": "a", "L2": "b"}

	report := MigrateSnapshotKeys(input)

	assert.False(t, report.Changed())
	assert.Equal(t, input, report.Snapshot)
}

func TestMigrateSnapshotKeys_Empty(t *testing.T) {
	report := MigrateSnapshotKeys(nil)

	assert.False(t, report.Changed())
	assert.NotNil(t, report.Snapshot)
	assert.True(t, report.Snapshot.IsEmpty())
}
