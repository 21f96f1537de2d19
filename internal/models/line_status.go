package models

// SnapshotKeyPrefix is prepended to a line code to build its snapshot key.
const SnapshotKeyPrefix = "L"

// LineStatus is the canonical status of one transit line.
type LineStatus struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
}

// SnapshotKey returns the stable key under which the line is persisted.
func (l LineStatus) SnapshotKey() string {
	return SnapshotKeyFor(l.Code)
}

// SnapshotKeyFor returns the snapshot key for a line code.
func SnapshotKeyFor(code string) string {
	return SnapshotKeyPrefix + code
}
