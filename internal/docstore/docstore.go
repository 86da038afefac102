package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pixiegarden/english-backend/internal/config"
	"github.com/pixiegarden/english-backend/internal/database"
)

// ErrUnavailable возвращается каждой операцией, когда хранилище не было
// подключено при старте процесса.
var ErrUnavailable = errors.New("document store not available")

type State int

const (
	StateConnected State = iota
	StateUnavailable
)

// Filter — типизированный предикат "поле равно значению" по телу документа.
// Нулевое значение совпадает со всеми документами коллекции.
type Filter struct {
	Field string
	Value string
}

type Document struct {
	ID   string
	Data json.RawMessage
}

func (d *Document) Decode(v interface{}) error {
	return json.Unmarshal(d.Data, v)
}

type Gateway interface {
	Available() bool
	Reason() string
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	Query(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	ListCollections(ctx context.Context) ([]string, error)
	IsValidReference(id string) bool
}

// Store хранит соединение с документной базой и её состояние. Состояние
// выставляется один раз при старте и дальше только читается.
type Store struct {
	db     *sql.DB
	state  State
	reason string
	logger zerolog.Logger
}

// Connect пытается подключиться к хранилищу. Любая ошибка переводит шлюз в
// деградированное состояние вместо падения процесса: каталог уроков обязан
// отвечать даже без базы.
func Connect(cfg config.DatabaseConfig, logger zerolog.Logger) *Store {
	if !cfg.Configured() {
		return unavailable("DATABASE_URL or DATABASE_NAME is not set", logger)
	}

	db, err := database.NewPostgres(cfg)
	if err != nil {
		return unavailable(err.Error(), logger)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return unavailable(err.Error(), logger)
	}

	logger.Info().Msg("Document store connection established")

	return &Store{
		db:     db,
		state:  StateConnected,
		logger: logger,
	}
}

// NewStore оборачивает уже открытое соединение.
func NewStore(db *sql.DB, logger zerolog.Logger) *Store {
	return &Store{
		db:     db,
		state:  StateConnected,
		logger: logger,
	}
}

func unavailable(reason string, logger zerolog.Logger) *Store {
	logger.Warn().Str("reason", reason).Msg("Document store unavailable, starting degraded")
	return &Store{
		state:  StateUnavailable,
		reason: reason,
		logger: logger,
	}
}

func (s *Store) Available() bool {
	return s.state == StateConnected
}

func (s *Store) Reason() string {
	return s.reason
}

func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("insert into %s: %w: %s", collection, ErrUnavailable, s.reason)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	id := uuid.New().String()

	query := `
		INSERT INTO documents (id, collection, doc, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, id, collection, data, time.Now()); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return id, nil
}

func (s *Store) Query(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if !s.Available() {
		return nil, fmt.Errorf("query %s: %w: %s", collection, ErrUnavailable, s.reason)
	}

	query := `SELECT id, doc FROM documents WHERE collection = $1`
	args := []interface{}{collection}

	if filter.Field != "" {
		query += fmt.Sprintf(` AND doc->>$%d = $%d`, len(args)+1, len(args)+2)
		args = append(args, filter.Field, filter.Value)
	}

	query += ` ORDER BY created_at`

	if limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d`, len(args)+1)
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, (*[]byte)(&doc.Data)); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", collection, err)
	}

	return docs, nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (*Document, error) {
	if !s.Available() {
		return nil, fmt.Errorf("get from %s: %w: %s", collection, ErrUnavailable, s.reason)
	}

	query := `SELECT id, doc FROM documents WHERE collection = $1 AND id = $2`

	doc := &Document{}
	err := s.db.QueryRowContext(ctx, query, collection, id).Scan(&doc.ID, (*[]byte)(&doc.Data))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document from %s: %w", collection, err)
	}

	return doc, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, fmt.Errorf("list collections: %w: %s", ErrUnavailable, s.reason)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan collection name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read collection names: %w", err)
	}

	return names, nil
}

// IsValidReference проверяет, что строка синтаксически корректный
// идентификатор хранилища. Формат id знает только шлюз.
func (s *Store) IsValidReference(id string) bool {
	return uuid.Validate(id) == nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
