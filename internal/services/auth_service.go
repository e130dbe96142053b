package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventory_pos_backend/internal/models"
	"inventory_pos_backend/internal/repositories"
	"inventory_pos_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrTokenGeneration     = errors.New("failed to generate token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest DTO. CompanyName is the tenant created for the new user;
// the registering user becomes that company's admin.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name" binding:"required"`
}

// RefreshRequest DTO
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// --- AuthService Interface ---
type AuthService interface {
	Register(req RegisterRequest) (*models.User, error)
	Login(req LoginRequest) (*AuthResponse, error)
	Refresh(req RefreshRequest) (*AuthResponse, error)
	GetUserProfile(userID int64) (*models.User, error)
}

// --- authService Implementation ---
type authService struct {
	authRepo    repositories.AuthRepository
	profileRepo repositories.ProfileRepository
	txs         TxBeginner
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(authRepo repositories.AuthRepository, profileRepo repositories.ProfileRepository, db *sql.DB) AuthService {
	return &authService{
		authRepo:    authRepo,
		profileRepo: profileRepo,
		txs:         NewTxBeginner(db),
	}
}

// Register creates the user, their company and the admin profile linking the
// two, all in one transaction so a failure cannot leave a user without a
// tenant scope.
func (s *authService) Register(req RegisterRequest) (*models.User, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return nil, fmt.Errorf("%w: company name cannot be empty", ErrValidation)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.txs.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to start database transaction: %w", err)
	}
	defer tx.Rollback()

	user := models.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		FullName: utils.TrimToNull(req.FullName),
	}

	userID, err := s.authRepo.CreateUser(tx, &user, string(hashedPasswordBytes))
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.ID = userID

	companyID, err := s.profileRepo.CreateCompany(tx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	profile := models.Profile{
		UserID:    userID,
		CompanyID: companyID,
		Role:      models.RoleAdmin,
	}
	if err := s.profileRepo.UpsertProfile(tx, &profile); err != nil {
		return nil, fmt.Errorf("failed to link admin profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration transaction: %w", err)
	}

	registeredUser, fetchErr := s.authRepo.FindUserByID(userID)
	if fetchErr != nil {
		// User exists but the read back failed; return what we have.
		user.Profile = &profile
		return &user, nil
	}
	return registeredUser, nil
}

// Login verifies credentials and issues a JWT. The token claims carry the
// resolved company and role so ledger calls never have to look them up again.
// Users without a profile still get a token; ledger operations will reject
// them with ErrCompanyUnresolved until an admin links them.
func (s *authService) Login(req LoginRequest) (*AuthResponse, error) {
	user, storedHashedPassword, err := s.authRepo.FindUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login attempt failed: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHashedPassword), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	var companyID int64
	var role string
	if user.Profile != nil {
		companyID = user.Profile.CompanyID
		role = user.Profile.Role
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, companyID, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a fresh token pair. Company and role
// are re-resolved from the profile row, so links and role changes made since
// login take effect on the next refresh.
func (s *authService) Refresh(req RefreshRequest) (*AuthResponse, error) {
	claims, err := utils.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRefreshToken, err)
	}

	user, err := s.authRepo.FindUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("refresh attempt failed: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidRefreshToken
	}

	var companyID int64
	var role string
	profile, err := s.profileRepo.GetProfileByUserID(user.ID)
	switch {
	case err == nil:
		companyID = profile.CompanyID
		role = profile.Role
		user.Profile = profile
	case errors.Is(err, repositories.ErrNotFound):
		// Unlinked users still refresh; ledger operations reject them until
		// an admin links a profile.
	default:
		return nil, fmt.Errorf("failed to resolve profile on refresh: %w", err)
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, companyID, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	user.PasswordHash = ""
	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUserProfile retrieves a user's account and profile by their ID.
func (s *authService) GetUserProfile(userID int64) (*models.User, error) {
	user, err := s.authRepo.FindUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve user profile: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}
