package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_pos_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// AuthRepository defines the interface for user account database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error)
	FindUserByEmail(email string) (*models.User, string, error) // Returns User, HashedPassword, Error
	FindUserByID(userID int64) (*models.User, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

// CreateUser inserts a new user into the database.
// It expects an SQLExecutor which can be a *sql.DB or *sql.Tx.
func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User, hashedPassword string) (int64, error) {
	query := `INSERT INTO users (email, password_hash, full_name, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	currentTime := time.Now()

	var userID int64
	err := executor.QueryRow(
		query,
		user.Email,
		hashedPassword,
		user.FullName, // Can be nil
		true,
		currentTime,
		currentTime,
	).Scan(&userID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "unique_violation" {
				return 0, fmt.Errorf("%w: %s (constraint: %s)", ErrDuplicateKey, pqErr.Message, pqErr.Constraint)
			}
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return userID, nil
}

// FindUserByEmail retrieves a user by email along with their password hash.
// The profile join supplies company and role when a profile row exists.
func (r *authRepository) FindUserByEmail(email string) (*models.User, string, error) {
	user := &models.User{}
	var hashedPassword string
	query := `
		SELECT u.id, u.email, u.password_hash, u.full_name, u.is_active, u.created_at, u.updated_at,
		       p.user_id, p.company_id, p.role, p.created_at
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.email = $1`

	var pUserID, pCompanyID sql.NullInt64
	var pRole sql.NullString
	var pCreatedAt sql.NullTime

	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &hashedPassword, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&pUserID, &pCompanyID, &pRole, &pCreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("%w: finding user by email: %v", ErrDatabaseError, err)
	}

	if pUserID.Valid {
		user.Profile = &models.Profile{
			UserID:    pUserID.Int64,
			CompanyID: pCompanyID.Int64,
			Role:      pRole.String,
			CreatedAt: pCreatedAt.Time,
		}
	}
	return user, hashedPassword, nil
}

// FindUserByID retrieves a user by ID, profile included when present.
func (r *authRepository) FindUserByID(userID int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT u.id, u.email, u.full_name, u.is_active, u.created_at, u.updated_at,
		       p.user_id, p.company_id, p.role, p.created_at
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE u.id = $1`

	var pUserID, pCompanyID sql.NullInt64
	var pRole sql.NullString
	var pCreatedAt sql.NullTime

	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.FullName,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&pUserID, &pCompanyID, &pRole, &pCreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding user by ID %d: %v", ErrDatabaseError, userID, err)
	}

	if pUserID.Valid {
		user.Profile = &models.Profile{
			UserID:    pUserID.Int64,
			CompanyID: pCompanyID.Int64,
			Role:      pRole.String,
			CreatedAt: pCreatedAt.Time,
		}
	}
	return user, nil
}
