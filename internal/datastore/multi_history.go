package datastore

import (
	"context"

	"github.com/aleister1102/metrowatch/internal/common"
	"github.com/aleister1102/metrowatch/internal/models"
)

// HistoryAppender is a single history sink.
type HistoryAppender interface {
	Append(ctx context.Context, record models.HistoryRecord) error
}

// MultiHistoryLog fans every row out to all sinks. One failing sink does not stop the others.
type MultiHistoryLog struct {
	sinks []HistoryAppender
}

// NewMultiHistoryLog creates a fan-out log. Nil sinks are ignored.
func NewMultiHistoryLog(sinks ...HistoryAppender) *MultiHistoryLog {
	m := &MultiHistoryLog{}
	for _, sink := range sinks {
		if sink != nil {
			m.sinks = append(m.sinks, sink)
		}
	}
	return m
}

// Append writes record to every sink and returns the collected failures.
func (m *MultiHistoryLog) Append(ctx context.Context, record models.HistoryRecord) error {
	var collector common.ErrorCollector
	for _, sink := range m.sinks {
		collector.Add(sink.Append(ctx, record))
	}
	return collector.Error()
}
