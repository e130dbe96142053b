package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"inventory_pos_backend/internal/models"

	"github.com/lib/pq"
)

// ProfileRepository defines the interface for company and profile operations.
// Profiles are the tenancy layer: every ledger row is scoped by the company a
// profile links its user to.
type ProfileRepository interface {
	CreateCompany(executor SQLExecutor, name string) (int64, error)
	UpsertProfile(executor SQLExecutor, profile *models.Profile) error
	GetProfileByUserID(userID int64) (*models.Profile, error)
	GetProfilesByCompany(companyID int64) ([]models.Profile, error)
}

type profileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateCompany(executor SQLExecutor, name string) (int64, error) {
	query := `INSERT INTO companies (name, created_at) VALUES ($1, $2) RETURNING id`
	var companyID int64
	err := executor.QueryRow(query, name, time.Now()).Scan(&companyID)
	if err != nil {
		return 0, fmt.Errorf("%w: creating company: %v", ErrDatabaseError, err)
	}
	return companyID, nil
}

// UpsertProfile links a user to a company with a role, replacing any existing
// link. Matches the original "Add / Link User" upsert.
func (r *profileRepository) UpsertProfile(executor SQLExecutor, profile *models.Profile) error {
	query := `INSERT INTO profiles (user_id, company_id, role, created_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id) DO UPDATE SET company_id = EXCLUDED.company_id, role = EXCLUDED.role`
	_, err := executor.Exec(query, profile.UserID, profile.CompanyID, profile.Role, time.Now())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return fmt.Errorf("%w: user %d does not exist (constraint: %s)", ErrNotFound, profile.UserID, pqErr.Constraint)
		}
		return fmt.Errorf("%w: upserting profile for user %d: %v", ErrDatabaseError, profile.UserID, err)
	}
	return nil
}

func (r *profileRepository) GetProfileByUserID(userID int64) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `SELECT user_id, company_id, role, created_at FROM profiles WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&profile.UserID, &profile.CompanyID, &profile.Role, &profile.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting profile for user %d: %v", ErrDatabaseError, userID, err)
	}
	return profile, nil
}

func (r *profileRepository) GetProfilesByCompany(companyID int64) ([]models.Profile, error) {
	profiles := []models.Profile{}
	query := `SELECT p.user_id, p.company_id, p.role, p.created_at, u.email
	          FROM profiles p
	          JOIN users u ON u.id = p.user_id
	          WHERE p.company_id = $1
	          ORDER BY p.created_at DESC`
	rows, err := r.db.Query(query, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: getting profiles for company %d: %v", ErrDatabaseError, companyID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var profile models.Profile
		var email string
		if err := rows.Scan(&profile.UserID, &profile.CompanyID, &profile.Role, &profile.CreatedAt, &email); err != nil {
			return nil, fmt.Errorf("%w: scanning profile: %v", ErrDatabaseError, err)
		}
		profile.UserEmail = &email
		profiles = append(profiles, profile)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating profiles: %v", ErrDatabaseError, err)
	}
	return profiles, nil
}
