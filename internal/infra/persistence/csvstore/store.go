package csvstore

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"cinematch/config"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/repository"
	"cinematch/internal/infra/metrics"

	"github.com/pkg/errors"
)

const (
	delimiter  = ","
	tmpPattern = ".*.tmp"

	dirPerm  = 0o750
	filePerm = 0o600
)

// Column names of the user table, in file order.
const (
	ColumnID          = "id"
	ColumnEmail       = "email"
	ColumnPassword    = "password"
	ColumnName        = "name"
	ColumnQuizResults = "quizResults"
)

// Columns is the header of the user table. The quiz payload comes last
// because it is the only value allowed to contain the delimiter.
var Columns = []string{ColumnID, ColumnEmail, ColumnPassword, ColumnName, ColumnQuizResults}

// Store is a UserRepository backed by one text file that is rewritten whole on every change.
//
// Without serialized writes, two overlapping read-modify-write cycles can lose one
// of the updates: the later rename wins. Each rename still leaves a complete file.
type Store struct {
	path      string
	codec     *Codec
	logger    *slog.Logger
	serialize bool
	mu        sync.Mutex

	// beforeRename runs after the temporary file is written; an error aborts the commit.
	beforeRename func(tmpPath string) error
}

// NewStore creates a store for the file at path.
func NewStore(path string, serializeWrites bool, logger *slog.Logger) *Store {
	return &Store{
		path:      path,
		codec:     NewCodec(delimiter, Columns...),
		logger:    logger.With(slog.String("component", "csvstore"), slog.String("path", path)),
		serialize: serializeWrites,
	}
}

// NewUserRepository builds the configured store as a repository.UserRepository.
func NewUserRepository(cfg *config.Config, logger *slog.Logger) repository.UserRepository {
	return NewStore(cfg.Store.Path, cfg.Store.SerializeWrites, logger)
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ReadAll returns every well-formed record in file order.
// A missing directory or file is created, leaving a header-only table.
// A file that exists but cannot be read is reported as StorageUnavailable rather
// than an empty table, so callers never mistake it for a store without users
// (see DESIGN.md, Open Question decision 3).
func (s *Store) ReadAll(ctx context.Context) ([]*entity.User, error) {
	if err := s.ensureDir(ctx); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.initialize(ctx); err != nil {
			return nil, err
		}

		return []*entity.User{}, nil
	}
	if err != nil {
		s.log(ctx).Error("Failed to read user table", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrStorageUnavailable, "read %s: %v", s.path, err)
	}

	rows := s.codec.Decode(blob)
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		if row.Get(ColumnID) == "" {
			metrics.StoreSkippedLines.Inc()
			s.log(ctx).Warn("Skipping malformed user line", slog.Int("line", row.Line))

			continue
		}
		users = append(users, toUser(row))
	}

	return users, nil
}

// FindByEmail returns the first record with exactly this email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.User, bool, error) {
	return s.find(ctx, func(u *entity.User) bool { return u.Email == email })
}

// FindByID returns the record with this id.
func (s *Store) FindByID(ctx context.Context, id string) (*entity.User, bool, error) {
	return s.find(ctx, func(u *entity.User) bool { return u.ID == id })
}

func (s *Store) find(ctx context.Context, match func(*entity.User) bool) (*entity.User, bool, error) {
	users, err := s.ReadAll(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := slices.IndexFunc(users, match)
	if idx < 0 {
		return nil, false, nil
	}

	return users[idx], true, nil
}

// Insert appends a record after checking that its email is not taken.
func (s *Store) Insert(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil || user.ID == "" {
		return nil, errors.New("user id is required")
	}

	s.lock()
	defer s.unlock()

	users, err := s.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if slices.ContainsFunc(users, func(u *entity.User) bool { return u.Email == user.Email }) {
		metrics.StoreWrites.WithLabelValues("insert", metrics.ResultRejected).Inc()

		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("insert user")
	}

	stored := *user
	users = append(users, &stored)

	if err := s.writeAll(ctx, "insert", users); err != nil {
		return nil, err
	}

	s.log(ctx).Info("User inserted", slog.String("user_id", stored.ID))

	return &stored, nil
}

// Replace merges the patch onto the record with the same id and rewrites the table.
func (s *Store) Replace(ctx context.Context, patch *entity.Patch) (*entity.User, bool, error) {
	if patch == nil {
		return nil, false, errors.New("patch is required")
	}

	s.lock()
	defer s.unlock()

	users, err := s.ReadAll(ctx)
	if err != nil {
		return nil, false, err
	}

	idx := slices.IndexFunc(users, func(u *entity.User) bool { return u.ID == patch.ID })
	if idx < 0 {
		metrics.StoreWrites.WithLabelValues("replace", metrics.ResultNotFound).Inc()
		s.log(ctx).Warn("Attempted to update non-existent user", slog.String("user_id", patch.ID))

		return nil, false, nil
	}

	merged := applyPatch(*users[idx], patch)
	if merged.Email != users[idx].Email && slices.ContainsFunc(users, func(u *entity.User) bool {
		return u.ID != merged.ID && u.Email == merged.Email
	}) {
		metrics.StoreWrites.WithLabelValues("replace", metrics.ResultRejected).Inc()

		return nil, false, domainerrors.ErrDuplicateEmail.WrapMessage("replace user")
	}
	users[idx] = &merged

	if err := s.writeAll(ctx, "replace", users); err != nil {
		return nil, false, err
	}

	return &merged, true, nil
}

func (s *Store) lock() {
	if s.serialize {
		s.mu.Lock()
	}
}

func (s *Store) unlock() {
	if s.serialize {
		s.mu.Unlock()
	}
}

func (s *Store) ensureDir(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err == nil {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		s.log(ctx).Error("Failed to create data directory", slog.String("dir", dir), slog.Any("error", err))

		return errors.Wrapf(domainerrors.ErrStorageUnavailable, "create %s: %v", dir, err)
	}

	s.log(ctx).Info("Created data directory", slog.String("dir", dir))

	return nil
}

// initialize publishes a header-only table without replacing one that appeared meanwhile,
// so a writer that committed after our read keeps its records.
func (s *Store) initialize(ctx context.Context) error {
	created, err := s.commit(s.codec.Encode(nil), false)
	if err != nil {
		metrics.StoreWrites.WithLabelValues("init", metrics.ResultFailure).Inc()
		s.log(ctx).Error("Failed to initialize user table", slog.Any("error", err))

		return errors.Wrapf(domainerrors.ErrStorageUnavailable, "initialize %s: %v", s.path, err)
	}

	if !created {
		s.log(ctx).Debug("User table created concurrently")

		return nil
	}

	metrics.StoreWrites.WithLabelValues("init", metrics.ResultSuccess).Inc()
	s.log(ctx).Info("Created user table with header")

	return nil
}

func (s *Store) writeAll(ctx context.Context, op string, users []*entity.User) error {
	if err := s.ensureDir(ctx); err != nil {
		metrics.StoreWrites.WithLabelValues(op, metrics.ResultFailure).Inc()

		return err
	}

	rows := make([]Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, fromUser(u))
	}

	if _, err := s.commit(s.codec.Encode(rows), true); err != nil {
		metrics.StoreWrites.WithLabelValues(op, metrics.ResultFailure).Inc()
		s.log(ctx).Error("Failed to write user table", slog.String("op", op), slog.Any("error", err))

		return errors.Wrapf(domainerrors.ErrStorageWriteFailed, "%s: %v", op, err)
	}

	metrics.StoreWrites.WithLabelValues(op, metrics.ResultSuccess).Inc()

	return nil
}

// commit writes blob to a temporary file beside the live one and moves it into place,
// so readers observe either the old or the new table, never a partial one.
// With replace unset the live file is only created, never overwritten; created reports
// whether this call published the table.
func (s *Store) commit(blob []byte, replace bool) (created bool, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+tmpPattern)
	if err != nil {
		return false, errors.Wrap(err, "create temporary file")
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil || !replace {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				s.logger.Warn("Failed to remove temporary file", slog.String("tmp", tmpPath), slog.Any("error", rmErr))
			}
		}
	}()

	if err = writeSynced(tmp, blob); err != nil {
		return false, err
	}

	if s.beforeRename != nil {
		if err = s.beforeRename(tmpPath); err != nil {
			return false, err
		}
	}

	if err = os.Chmod(tmpPath, filePerm); err != nil {
		return false, errors.Wrap(err, "chmod temporary file")
	}

	if !replace {
		// link fails instead of clobbering an existing table
		err = os.Link(tmpPath, s.path)
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		if err != nil {
			return false, errors.Wrap(err, "link temporary file")
		}

		return true, nil
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		return false, errors.Wrap(err, "rename temporary file")
	}

	return true, nil
}

func writeSynced(f *os.File, blob []byte) error {
	if _, err := f.Write(blob); err != nil {
		_ = f.Close()

		return errors.Wrap(err, "write temporary file")
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()

		return errors.Wrap(err, "sync temporary file")
	}

	return errors.Wrap(f.Close(), "close temporary file")
}

func applyPatch(u entity.User, patch *entity.Patch) entity.User {
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.QuizResults != nil {
		u.QuizResults = *patch.QuizResults
	}

	return u
}

func toUser(row Row) *entity.User {
	return &entity.User{
		ID:          row.Get(ColumnID),
		Email:       row.Get(ColumnEmail),
		Password:    row.Get(ColumnPassword),
		Name:        row.Get(ColumnName),
		QuizResults: row.Get(ColumnQuizResults),
	}
}

func fromUser(u *entity.User) Row {
	return Row{Values: map[string]string{
		ColumnID:          u.ID,
		ColumnEmail:       u.Email,
		ColumnPassword:    u.Password,
		ColumnName:        u.Name,
		ColumnQuizResults: u.QuizResults,
	}}
}
