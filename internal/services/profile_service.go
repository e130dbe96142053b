package services

import (
	"database/sql"
	"errors"
	"fmt"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"
)

// --- Profile DTOs ---

// LinkUserRequest links an already-registered user to the admin's company.
type LinkUserRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"` // "staff" or "admin"
}

// --- ProfileService Interface ---
type ProfileService interface {
	GetProfiles(actor models.Actor) ([]models.Profile, error)
	LinkUser(actor models.Actor, req LinkUserRequest) (*models.Profile, error)
}

// --- profileService Implementation ---
type profileService struct {
	profileRepo repositories.ProfileRepository
	db          *sql.DB
}

// NewProfileService creates a new instance of ProfileService.
func NewProfileService(pr repositories.ProfileRepository, db *sql.DB) ProfileService {
	return &profileService{
		profileRepo: pr,
		db:          db,
	}
}

func (s *profileService) GetProfiles(actor models.Actor) ([]models.Profile, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	profiles, err := s.profileRepo.GetProfilesByCompany(actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company profiles: %w", err)
	}
	return profiles, nil
}

// LinkUser upserts a profile tying an existing user to the actor's company.
// Admin only. The user must already have an account; this mirrors the
// original flow where staff accounts are created first and then linked.
func (s *profileService) LinkUser(actor models.Actor, req LinkUserRequest) (*models.Profile, error) {
	if actor.CompanyID == 0 {
		return nil, ErrCompanyUnresolved
	}
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: only admin can link users", ErrNotAuthorized)
	}
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("%w: role must be one of admin, staff", ErrValidation)
	}

	profile := models.Profile{
		UserID:    req.UserID,
		CompanyID: actor.CompanyID,
		Role:      req.Role,
	}
	if err := s.profileRepo.UpsertProfile(s.db, &profile); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to link user %d: %w", req.UserID, err)
	}
	return &profile, nil
}
