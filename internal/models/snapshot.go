package models

// Snapshot maps "L"+code to the last observed status of that line.
type Snapshot map[string]string

// Clone returns an independent copy. A nil snapshot clones to an empty one.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether no line has ever been recorded.
func (s Snapshot) IsEmpty() bool {
	return len(s) == 0
}
