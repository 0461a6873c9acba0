package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/logilink/logilink-client/internal/logger"
)

// Names of the persisted state slices. Each occupies one row of app_state.
const (
	sliceSession = "session"
	sliceTheme   = "theme"
)

// stateRepository is the SQLite-backed implementation of [StateRepository].
// Every slice is stored as a JSON payload in the app_state table, one row per
// slice, so a save either replaces the whole slice or changes nothing.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type stateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStateRepository constructs a [StateRepository] backed by the provided
// database connection and logger.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSession persists the identity slice as one row, replacing any earlier
// write for the same slice.
func (r *stateRepository) SaveSession(ctx context.Context, session PersistedSession) error {
	return r.saveSlice(ctx, sliceSession, session)
}

// LoadSession returns the last persisted identity slice.
//
// Error handling:
//   - no row for the slice → [ErrNothingPersisted].
//   - undecodable payload → [ErrCorruptPayload].
func (r *stateRepository) LoadSession(ctx context.Context) (PersistedSession, error) {
	var session PersistedSession
	if err := r.loadSlice(ctx, sliceSession, &session); err != nil {
		return PersistedSession{}, err
	}
	return session, nil
}

// ClearSession removes the persisted identity slice. Deleting an absent row
// is not an error.
func (r *stateRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("app_state").
		Where(sq.Eq{"slice": sliceSession}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.ClearSession").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*stateRepository.ClearSession").Msg("error: executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveTheme persists the display preference slice.
func (r *stateRepository) SaveTheme(ctx context.Context, theme PersistedTheme) error {
	return r.saveSlice(ctx, sliceTheme, theme)
}

// LoadTheme returns the last persisted display preference.
func (r *stateRepository) LoadTheme(ctx context.Context) (PersistedTheme, error) {
	var theme PersistedTheme
	if err := r.loadSlice(ctx, sliceTheme, &theme); err != nil {
		return PersistedTheme{}, err
	}
	return theme, nil
}

func (r *stateRepository) saveSlice(ctx context.Context, slice string, value any) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.saveSlice").Str("slice", slice).Msg("error: encoding payload")
		return fmt.Errorf("encode %s payload: %w", slice, err)
	}

	query, args, err := sq.Insert("app_state").
		Columns("slice", "payload").
		Values(slice, string(payload)).
		Suffix("ON CONFLICT(slice) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.saveSlice").Str("slice", slice).Msg("error: building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*stateRepository.saveSlice").Str("slice", slice).Msg("error: executing upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *stateRepository) loadSlice(ctx context.Context, slice string, dest any) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("payload").
		From("app_state").
		Where(sq.Eq{"slice": slice}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*stateRepository.loadSlice").Str("slice", slice).Msg("error: building select query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNothingPersisted
		}
		log.Err(err).Str("func", "*stateRepository.loadSlice").Str("slice", slice).Msg("error: scanning payload")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(payload), dest); err != nil {
		log.Err(err).Str("func", "*stateRepository.loadSlice").Str("slice", slice).Msg("error: decoding payload")
		return fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}

	return nil
}
