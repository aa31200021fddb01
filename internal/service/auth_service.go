package service

import (
	"context"
	"errors"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/config"
	"github.com/AndreHordd/Zlagoda/internal/dto"
	"github.com/AndreHordd/Zlagoda/internal/model"
	"github.com/AndreHordd/Zlagoda/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AccountResponse, error)
	Me(ctx context.Context, accountID uint) (*dto.MeResponse, error)
}

type authService struct {
	accounts  repository.AccountRepository
	employees repository.EmployeeRepository
	cfg       *config.Config
}

func NewAuthService(accounts repository.AccountRepository, employees repository.EmployeeRepository, cfg *config.Config) AuthService {
	return &authService{accounts: accounts, employees: employees, cfg: cfg}
}

func accountToResponse(a *model.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:         a.ID,
		Username:   a.Username,
		Role:       a.Role,
		EmployeeID: a.EmployeeID,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := s.accounts.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	accessToken, err := s.generateToken(account, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(account, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         accountToResponse(account),
	}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalid or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("malformed token")
	}
	idClaim, ok := claims["account_id"].(float64)
	if !ok {
		return nil, errors.New("malformed token")
	}

	account, err := s.accounts.FindByID(ctx, uint(idClaim))
	if err != nil {
		return nil, errors.New("account not found")
	}

	accessToken, err := s.generateToken(account, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.generateToken(account, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         accountToResponse(account),
	}, nil
}

// Register creates a login for an existing employee. The account role always
// mirrors the employee's role.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AccountResponse, error) {
	employee, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("employee not found")
		}
		return nil, err
	}

	if _, err := s.accounts.FindByUsername(ctx, req.Username); err == nil {
		return nil, errors.New("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	account := &model.Account{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         employee.Role,
		EmployeeID:   &employee.ID,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	resp := accountToResponse(account)
	return &resp, nil
}

func (s *authService) Me(ctx context.Context, accountID uint) (*dto.MeResponse, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, ErrNotFound
	}
	dashboard := "/v1/receipts"
	if account.Role == model.RoleManager {
		dashboard = "/v1/reports"
	}
	return &dto.MeResponse{Account: accountToResponse(account), Dashboard: dashboard}, nil
}

func (s *authService) generateToken(a *model.Account, ttl time.Duration) (string, error) {
	employeeID := ""
	if a.EmployeeID != nil {
		employeeID = *a.EmployeeID
	}
	claims := jwt.MapClaims{
		"account_id":  a.ID,
		"username":    a.Username,
		"role":        a.Role,
		"employee_id": employeeID,
		"exp":         time.Now().Add(ttl).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
