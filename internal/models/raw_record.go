package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexString accepts a JSON string, number or boolean and keeps its textual form.
// Null or absent values leave Valid false. Objects and arrays are kept as invalid
// rather than failing the surrounding decode, so one odd record cannot poison the feed.
type FlexString struct {
	Value string
	Valid bool
}

// NewFlexString returns a valid FlexString holding s.
func NewFlexString(s string) FlexString {
	return FlexString{Value: s, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	*f = FlexString{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		f.Value, f.Valid = s, true
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return nil
		}
		f.Value, f.Valid = strconv.FormatBool(b), true
	case '{', '[':
		// unsupported shape, left invalid
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return nil
		}
		f.Value, f.Valid = n.String(), true
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f FlexString) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// RawRecord is one entry of the upstream status payload.
type RawRecord struct {
	Code        FlexString `json:"codigo"`
	Status      FlexString `json:"situacao"`
	Description FlexString `json:"descricao"`
	Name        FlexString `json:"nome"`

	// Index is the position of the record in the fetched payload.
	Index int `json:"-"`
}

// DecodeRawRecords decodes a JSON array of status records. Elements that are not
// objects decode to an empty record so the normalizer can reject them individually.
func DecodeRawRecords(body []byte) ([]RawRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return nil, err
	}

	records := make([]RawRecord, 0, len(elements))
	for i, element := range elements {
		var record RawRecord
		if err := json.Unmarshal(element, &record); err != nil {
			record = RawRecord{}
		}
		record.Index = i
		records = append(records, record)
	}
	return records, nil
}
