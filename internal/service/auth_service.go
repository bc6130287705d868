package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/config"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Principal is the authenticated identity carried through a request.
type Principal struct {
	AccountID string
	Audience  string
	IsAdmin   bool
	ClientID  string // empty for staff principals
}

type AuthService interface {
	// StaffLogin succeeds only for accounts carrying the admin claim. A
	// valid credential without the claim is rejected and its refresh
	// tokens are revoked.
	StaffLogin(ctx context.Context, email, password string) (*repository.Account, string, string, error)
	ClientLogin(ctx context.Context, email, password string) (*repository.Account, string, string, error)
	// ClientRegister creates a client profile and an account bound to it.
	ClientRegister(ctx context.Context, name, email, password string, companyName, phone *string) (*repository.Account, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
	// SetAdmin grants the admin claim to the named account. The HTTP layer
	// requires the caller to already be an admin; the first admin must be
	// created out-of-band (seed).
	SetAdmin(ctx context.Context, email string) error
	ValidateToken(token string) (*jwt.Token, error)
	PrincipalFromToken(token *jwt.Token) (*Principal, error)
	GetAccount(ctx context.Context, accountID string) (*repository.Account, error)
}

type authService struct {
	cfg         *config.Config
	accountRepo repository.AccountRepository
	clientRepo  repository.ClientRepository
}

func NewAuthService(cfg *config.Config, accountRepo repository.AccountRepository, clientRepo repository.ClientRepository) AuthService {
	return &authService{cfg: cfg, accountRepo: accountRepo, clientRepo: clientRepo}
}

func (s *authService) StaffLogin(ctx context.Context, email, password string) (*repository.Account, string, string, error) {
	account, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}
	if account.Audience != types.AudienceStaff {
		return nil, "", "", ErrInvalidCredentials
	}

	// The admin claim is the one authorization check that matters: a staff
	// credential without it must not hold a session.
	if !account.IsAdmin {
		s.accountRepo.DeleteRefreshTokensForAccount(ctx, account.ID)
		return nil, "", "", ErrForbidden
	}

	accessToken, refreshToken, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}
	return account, accessToken, refreshToken, nil
}

func (s *authService) ClientLogin(ctx context.Context, email, password string) (*repository.Account, string, string, error) {
	account, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}
	if account.Audience != types.AudienceClient || account.ClientID == nil {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}
	return account, accessToken, refreshToken, nil
}

func (s *authService) ClientRegister(ctx context.Context, name, email, password string, companyName, phone *string) (*repository.Account, string, string, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to look up account: %w", err)
	}
	if existing != nil {
		return nil, "", "", ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	client := &repository.Client{
		Name:        name,
		Email:       email,
		CompanyName: companyName,
		Phone:       phone,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, "", "", fmt.Errorf("failed to create client profile: %w", err)
	}

	account := &repository.Account{
		Email:        email,
		PasswordHash: string(hashed),
		Name:         name,
		Audience:     types.AudienceClient,
		ClientID:     &client.ID,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, "", "", ErrAccountExists
		}
		return nil, "", "", fmt.Errorf("failed to create account: %w", err)
	}

	accessToken, refreshToken, err := s.generateTokens(ctx, account)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}
	return account, accessToken, refreshToken, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	rt, err := s.accountRepo.FindRefreshToken(ctx, refreshToken)
	if err != nil || rt == nil {
		return "", "", ErrInvalidToken
	}

	if time.Now().After(rt.ExpiresAt) {
		s.accountRepo.DeleteRefreshToken(ctx, refreshToken)
		return "", "", ErrInvalidToken
	}

	account, err := s.accountRepo.FindByID(ctx, rt.AccountID)
	if err != nil || account == nil {
		return "", "", ErrInvalidToken
	}

	// Staff accounts that lost the admin claim lose their session on the
	// next refresh.
	if account.Audience == types.AudienceStaff && !account.IsAdmin {
		s.accountRepo.DeleteRefreshTokensForAccount(ctx, account.ID)
		return "", "", ErrForbidden
	}

	s.accountRepo.DeleteRefreshToken(ctx, refreshToken)

	accessToken, newRefreshToken, err := s.generateTokens(ctx, account)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate tokens: %w", err)
	}
	return accessToken, newRefreshToken, nil
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.accountRepo.DeleteRefreshToken(ctx, refreshToken)
}

func (s *authService) SetAdmin(ctx context.Context, email string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return ErrNotFound
	}
	return s.accountRepo.SetAdmin(ctx, account.ID, true)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (s *authService) PrincipalFromToken(token *jwt.Token) (*Principal, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	audience, ok := claims["aud"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	p := &Principal{AccountID: sub, Audience: audience}
	if isAdmin, ok := claims["admin"].(bool); ok {
		p.IsAdmin = isAdmin
	}
	if clientID, ok := claims["clientId"].(string); ok {
		p.ClientID = clientID
	}
	return p, nil
}

func (s *authService) GetAccount(ctx context.Context, accountID string) (*repository.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *authService) verifyCredentials(ctx context.Context, email, password string) (*repository.Account, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil || account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

func (s *authService) generateTokens(ctx context.Context, account *repository.Account) (string, string, error) {
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"aud":   account.Audience,
		"admin": account.IsAdmin,
		"exp":   time.Now().Add(time.Hour * time.Duration(s.cfg.JWTExpiry)).Unix(),
		"iat":   time.Now().Unix(),
	}
	if account.ClientID != nil {
		claims["clientId"] = *account.ClientID
	}

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessTokenString, err := accessToken.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", "", err
	}

	refreshTokenString := uuid.New().String()
	rt := &repository.RefreshToken{
		Token:     refreshTokenString,
		AccountID: account.ID,
		ExpiresAt: time.Now().Add(time.Hour * 24 * time.Duration(s.cfg.RefreshExpiry)),
	}
	if err := s.accountRepo.CreateRefreshToken(ctx, rt); err != nil {
		return "", "", err
	}

	return accessTokenString, refreshTokenString, nil
}
