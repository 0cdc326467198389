// Package job contains scheduled maintenance jobs for the web server.
package job

import (
	"github.com/vahanscan/vahanscan/logger"
	"github.com/vahanscan/vahanscan/web/session"
)

// ClearSessionsJob prunes expired sessions from the session store. Expired
// sessions already resolve as absent, so this only keeps the table bounded.
type ClearSessionsJob struct {
	sessions *session.Manager
}

func NewClearSessionsJob(sessions *session.Manager) *ClearSessionsJob {
	return &ClearSessionsJob{sessions: sessions}
}

func (j *ClearSessionsJob) Run() {
	removed, err := j.sessions.Sweep()
	if err != nil {
		logger.Warning("sweep expired sessions:", err)
		return
	}
	if removed > 0 {
		logger.Debugf("swept %d expired sessions", removed)
	}
}
