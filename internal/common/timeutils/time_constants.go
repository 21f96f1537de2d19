package timeutils

import "time"

// Layouts used for history rows and log output.
const (
	LayoutDateOnly = "2006-01-02"
	LayoutTimeOnly = "15:04:05"
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutISO8601  = "2006-01-02T15:04:05Z07:00"
)

// OperatorZoneName labels the fixed offset shared by the operators and the upstream feed.
const OperatorZoneName = "BRT"

// OperatorZoneOffset is UTC-3. Brazil dropped daylight saving in 2019, so a fixed
// offset is used instead of a tz database lookup.
const OperatorZoneOffset = -3 * 60 * 60

// OperatorZone is the civil zone every transition timestamp is expressed in.
var OperatorZone = time.FixedZone(OperatorZoneName, OperatorZoneOffset)
