// Package auditlog provides best-effort audit logging for tag commands.
// Entries are stored in ~/.tag/log/tag-log.db and track CLI invocations
// across directories, keyed by a hash of the working directory.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	auditlog.Event("index", "index").
//		Path(searchPath).
//		Detail("links", result.Count).
//		Write(err)
//
// Logging never breaks the command: if the database cannot be opened the
// builder calls become no-ops.
package auditlog

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // command name, e.g. "add", "index"
	Action string // verb: rename, search, list, index
	Path   string // input: primary path argument

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether the command succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional command-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to record the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for a command invocation.
// The source is the command name; the action is the verb it performs.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the primary path this command operates on.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Detail adds a key-value pair to the entry's detail map. Use for
// command-specific data: tag lists, match counts, link counts.
// Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success/failure from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort
// logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	project := ""
	if wd, err := os.Getwd(); err == nil {
		project = hash(wd)
	}

	global = &Logger{db: db, project: project}
	return nil
}

// Log writes an entry. Safe to call if the logger is not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
