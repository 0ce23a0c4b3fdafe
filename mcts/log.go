package mcts

import (
	"bytes"
	"sync"

	"github.com/sirupsen/logrus"
)

// lumberjack keeps the search log in memory so it can be dumped after a game.
type lumberjack struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	logger *logrus.Logger
}

func makeLumberJack(level logrus.Level) *lumberjack {
	l := &lumberjack{}
	l.logger = logrus.New()
	l.logger.SetOutput(lockedWriter{l})
	l.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.logger.SetLevel(level)
	return l
}

func (l *lumberjack) log(format string, attrs ...interface{}) {
	l.logger.Debugf(format, attrs...)
}

// Log returns everything logged so far.
func (l *lumberjack) Log() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

type lockedWriter struct{ l *lumberjack }

func (w lockedWriter) Write(p []byte) (int, error) {
	w.l.mu.Lock()
	defer w.l.mu.Unlock()
	return w.l.buf.Write(p)
}
