package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, existsUserByUsernameOrEmail, username, email).Scan(&id)
	switch {
	case err == nil:
		return true, nil
	case isNoRows(err):
		return false, nil
	default:
		r.db.logQueryError(log, err, "*userRepository.ExistsByUsernameOrEmail", "error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateUser persists a new user and returns the row as stored, including
// the server-assigned id and timestamps.
//
// A unique_violation (23505) on username or email becomes
// [ErrUserAlreadyExists]; this covers two registrations racing past the
// existence pre-check.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash).
		Scan(&created.ID, &created.Username, &created.Email, &created.PasswordHash, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Info().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user already exists")
			return models.User{}, ErrUserAlreadyExists
		}

		r.db.logQueryError(log, err, "*userRepository.CreateUser", "error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var found models.User
	err := queryOne(ctx, r.db, "*userRepository.FindUserByUsername", findUserByUsername, func(row rowScanner) error {
		return row.Scan(&found.ID, &found.Username, &found.Email, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt)
	}, username)
	if err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		return models.User{}, err
	}

	return found, nil
}
