package datastore

import (
	"regexp"
	"sort"
	"strings"

	"github.com/aleister1102/metrowatch/internal/models"
	"github.com/aleister1102/metrowatch/internal/normalizer"
)

var (
	canonicalKeyPattern = regexp.MustCompile(`^L(\d+)$`)
	legacyKeyPattern    = regexp.MustCompile(`(?i)^(?:linha|line)?\s*(\d+)(?:\s*-\s*.*)?$`)
)

// KeyRewrite records one legacy key mapped onto a canonical key.
type KeyRewrite struct {
	From string
	To   string
	// Dropped is true when the canonical key already existed and the legacy value was discarded.
	Dropped bool
}

// MigrationReport describes what MigrateSnapshotKeys changed.
type MigrationReport struct {
	Snapshot models.Snapshot
	Rewrites []KeyRewrite
	Unmapped []string
}

// Changed reports whether the migrated snapshot differs from the input.
func (r MigrationReport) Changed() bool {
	return len(r.Rewrites) > 0
}

// CanonicalKey maps a snapshot key, canonical or legacy, to "L"+code.
// The second return value is false when the key matches no known form.
func CanonicalKey(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if m := canonicalKeyPattern.FindStringSubmatch(key); m != nil {
		return models.SnapshotKeyFor(normalizer.NormalizeCode(m[1])), true
	}
	if m := legacyKeyPattern.FindStringSubmatch(key); m != nil {
		return models.SnapshotKeyFor(normalizer.NormalizeCode(m[1])), true
	}
	return "", false
}

// MigrateSnapshotKeys rewrites legacy keys ("Linha 1 - Azul", "Linha 1",
// "Line 1 - Azul", "1") into canonical "L1" keys. A canonical key already in
// the snapshot wins over any legacy duplicate. Keys matching no known form are
// kept untouched and listed in Unmapped. The input is not modified.
func MigrateSnapshotKeys(snapshot models.Snapshot) MigrationReport {
	report := MigrationReport{Snapshot: make(models.Snapshot, len(snapshot))}

	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var legacy []string
	for _, key := range keys {
		canonical, ok := CanonicalKey(key)
		switch {
		case !ok:
			report.Unmapped = append(report.Unmapped, key)
			report.Snapshot[key] = snapshot[key]
		case canonical == key:
			report.Snapshot[key] = snapshot[key]
		default:
			legacy = append(legacy, key)
		}
	}

	for _, key := range legacy {
		canonical, _ := CanonicalKey(key)
		rewrite := KeyRewrite{From: key, To: canonical}
		if _, exists := report.Snapshot[canonical]; exists {
			rewrite.Dropped = true
		} else {
			report.Snapshot[canonical] = snapshot[key]
		}
		report.Rewrites = append(report.Rewrites, rewrite)
	}

	return report
}
