// Package testlog provides a logx.Logger that records entries for assertions.
package testlog

import (
	"sync"

	"technician-dispatch/internal/logx"
)

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value of key in e.
func (e Entry) Field(key string) (any, bool) {
	for i := len(e.Fields) - 1; i >= 0; i-- {
		if e.Fields[i].Key == key {
			return e.Fields[i].Value, true
		}
	}
	return nil, false
}

// Recorder collects entries from every logger it hands out.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logger writing into r.
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Find returns the recorded entries with the given message.
func (r *Recorder) Find(msg string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Msg == msg {
			out = append(out, e)
		}
	}
	return out
}

// Levels counts the entries per level.
func (r *Recorder) Levels() map[string]int {
	out := make(map[string]int)
	for _, e := range r.Entries() {
		out[e.Level]++
	}
	return out
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) log(level, msg string, f []logx.Field) {
	fields := make([]logx.Field, 0, len(b.base)+len(f))
	fields = append(fields, b.base...)
	b.r.add(level, msg, append(fields, f...))
}

func (b bound) Debug(msg string, f ...logx.Field) { b.log("debug", msg, f) }
func (b bound) Info(msg string, f ...logx.Field)  { b.log("info", msg, f) }
func (b bound) Warn(msg string, f ...logx.Field)  { b.log("warn", msg, f) }
func (b bound) Error(msg string, f ...logx.Field) { b.log("error", msg, f) }

func (b bound) With(f ...logx.Field) logx.Logger {
	base := make([]logx.Field, 0, len(b.base)+len(f))
	base = append(base, b.base...)
	return bound{r: b.r, base: append(base, f...)}
}

func (b bound) Sync() error { return nil }

var _ logx.Logger = bound{}
