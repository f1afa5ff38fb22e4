// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"
)

// logInterval is the minimum duration between unforced progress messages.
const logInterval = time.Second * 10

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// formatBytes returns a human readable representation of the provided number
// of bytes using binary prefixes.
func formatBytes(n float64) string {
	const units = "KMGTPE"
	if n < 1024 {
		return fmt.Sprintf("%.0f B", n)
	}
	i := -1
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}
	return fmt.Sprintf("%.2f %ciB", n, units[i])
}

// Logger provides periodic logging of the throughput of some action such as
// generating random words.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string
	singular        string
	plural          string

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information between log statements.
	receivedValues uint64
	receivedBytes  uint64

	// These fields accumulate information over the life of the logger.
	totalValues uint64
	totalBytes  uint64
}

// New returns a new throughput logger.  The noun forms describe the values
// being counted, for example "word" and "words".
func New(progressAction, singular, plural string, logger slog.Logger) *Logger {
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		singular:        singular,
		plural:          plural,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the provided number of values and bytes and
// periodically (every 10 seconds) logs an information message to show progress
// to the user along with duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//
//	{progressAction} {numValues} {singular|plural} ({numBytes}) in the last
//	{timePeriod} ({byteRate}/s, {totalValues} total)
func (l *Logger) LogProgress(values, bytes uint64, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.receivedValues += values
	l.receivedBytes += bytes
	l.totalValues += values
	l.totalBytes += bytes
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < logInterval {
		return
	}

	var rate float64
	if secs := duration.Seconds(); secs > 0 {
		rate = float64(l.receivedBytes) / secs
	}
	l.subsystemLogger.Infof("%s %d %s (%s) in the last %0.2fs (%s/s, %d total)",
		l.progressAction, l.receivedValues,
		pickNoun(l.receivedValues, l.singular, l.plural),
		formatBytes(float64(l.receivedBytes)), duration.Seconds(),
		formatBytes(rate), l.totalValues)

	l.receivedValues = 0
	l.receivedBytes = 0
	l.lastLogTime = now
}

// Totals returns the number of values and bytes accumulated over the life of
// the logger.
func (l *Logger) Totals() (values, bytes uint64) {
	l.Lock()
	defer l.Unlock()
	return l.totalValues, l.totalBytes
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
