// SPDX-License-Identifier: MIT

package prodcons

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Log field keys shared by the orchestrator and its workers.
const (
	fieldRun    = "run"
	fieldRole   = "role"
	fieldWorker = "worker"
)

// discardLogger is used when the caller supplies no logger.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func workerLogger(base logrus.FieldLogger, role string, id int) logrus.FieldLogger {
	if base == nil {
		base = discardLogger()
	}

	return base.WithFields(logrus.Fields{fieldRole: role, fieldWorker: id})
}
