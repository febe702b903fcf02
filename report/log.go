// Package report carries progress and status notifications from the core to whatever renders them.
package report

import (
	"github.com/clipdrop/clipdrop/log"
	"github.com/clipdrop/clipdrop/media"
)

// Log writes notifications to the application log.
type Log struct{}

func (Log) OnStatus(message string, severity Severity) {
	entry := log.With(log.Fields{"severity": severity.String()})
	if severity == Error {
		entry.Warn(message)
		return
	}
	entry.Info(message)
}

func (Log) OnItemStatus(index int, message string) {
	log.With(log.Fields{"item": index}).Debug(message)
}

func (Log) OnItemResolved(index int, record *media.Record) {
	log.With(log.Fields{"item": index, "id": record.ID, "author": record.Author}).Info("resolved")
}

func (Log) OnItemFailed(index int) {
	log.With(log.Fields{"item": index}).Warn("extraction failed")
}

func (Log) OnProgress(current, total int) {
	log.With(log.Fields{"current": current, "total": total}).Debug("progress")
}
