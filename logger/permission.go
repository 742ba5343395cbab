// This file is part of makeref.
//
// makeref is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// makeref is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with makeref.  If not, see <https://www.gnu.org/licenses/>.

package logger

import "sync/atomic"

// Permission implementations indicate whether a log request is allowed to
// create a new log entry.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the permission to use if a log entry should always be made.
var Allow Permission = allow{}

// Limit is a Permission that allows a fixed number of log entries. Useful for
// events that can happen on every frame. Safe to use from more than one
// goroutine.
type Limit struct {
	remaining atomic.Int64
}

// NewLimit returns a Permission that allows the first n log requests.
func NewLimit(n int) *Limit {
	l := &Limit{}
	l.remaining.Store(int64(n))
	return l
}

// AllowLogging implements the Permission interface.
func (l *Limit) AllowLogging() bool {
	return l.remaining.Add(-1) >= 0
}
