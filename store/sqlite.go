package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const optionsSchema = `CREATE TABLE IF NOT EXISTS options (
	option_name  TEXT PRIMARY KEY NOT NULL,
	option_value
)`

// SQLite keeps options in a single table of a database file. Value column
// has no declared type so values keep the type they were written with.
type SQLite struct {
	mu   sync.Mutex
	conn *sqlite.Conn
	log  *zap.Logger
}

func NewSQLite(path string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("unable to open options database '%s': %w", path, err)
	}
	if err := sqlitex.ExecuteTransient(conn, optionsSchema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to prepare options table in '%s': %w", path, err)
	}
	return &SQLite{conn: conn, log: log.Named("sqlite")}, nil
}

// lock serializes access to connection and makes it interruptible by ctx,
// returned function must be called to release it.
func (s *SQLite) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.conn.SetInterrupt(ctx.Done())
	return func() {
		s.conn.SetInterrupt(nil)
		s.mu.Unlock()
	}, nil
}

func (s *SQLite) Get(ctx context.Context, key string, def any) (any, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	value := def
	err = sqlitex.Execute(s.conn, `SELECT option_value FROM options WHERE option_name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{key},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				value = columnValue(stmt, 0)
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to read option %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value any) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	err = sqlitex.Execute(s.conn, `INSERT INTO options (option_name, option_value) VALUES (?, ?)
ON CONFLICT (option_name) DO UPDATE SET option_value = excluded.option_value`,
		&sqlitex.ExecOptions{Args: []any{key, value}})
	if err != nil {
		return fmt.Errorf("unable to write option %q: %w", key, err)
	}
	s.log.Debug("Option written", zap.String("key", key), zap.Any("value", value))
	return nil
}

func (s *SQLite) Keys(ctx context.Context) ([]string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var keys []string
	err = sqlitex.Execute(s.conn, `SELECT option_name FROM options`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			keys = append(keys, stmt.ColumnText(0))
			return nil
		}})
	if err != nil {
		return nil, fmt.Errorf("unable to list options: %w", err)
	}
	return sortKeys(keys), nil
}

func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

func columnValue(stmt *sqlite.Stmt, col int) any {
	switch stmt.ColumnType(col) {
	case sqlite.TypeInteger:
		return stmt.ColumnInt64(col)
	case sqlite.TypeFloat:
		return stmt.ColumnFloat(col)
	case sqlite.TypeText:
		return stmt.ColumnText(col)
	case sqlite.TypeBlob:
		buf := make([]byte, stmt.ColumnLen(col))
		stmt.ColumnBytes(col, buf)
		return buf
	default:
		return nil
	}
}
