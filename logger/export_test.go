package logger

import "gopkg.in/natefinch/lumberjack.v2"

// OpenSink exposes the live file sink to tests.
func OpenSink() *lumberjack.Logger {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	return sink
}
