package service

import (
	"context"
	"testing"
	"time"

	"github.com/arjun-and-preetham/studio-backend/internal/config"
	"github.com/arjun-and-preetham/studio-backend/internal/repository"
	"github.com/arjun-and-preetham/studio-backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     1,
		RefreshExpiry: 1,
	}
}

func newTestAuth(t *testing.T) (AuthService, *fakeAccountRepo, *fakeClientRepo) {
	t.Helper()
	accounts := newFakeAccountRepo()
	clients := newFakeClientRepo()
	return NewAuthService(testConfig(), accounts, clients), accounts, clients
}

func seedAccount(t *testing.T, repo *fakeAccountRepo, email, password, audience string, isAdmin bool, clientID *string) *repository.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	account := &repository.Account{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Test Account",
		Audience:     audience,
		IsAdmin:      isAdmin,
		ClientID:     clientID,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestStaffLogin(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	admin := seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	account, access, refresh, err := auth.StaffLogin(ctx, "admin@studio.test", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, account.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	stored, err := accounts.FindRefreshToken(ctx, refresh)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, admin.ID, stored.AccountID)
}

func TestStaffLoginWithoutAdminClaimRevokesSessions(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	staff := seedAccount(t, accounts, "staff@studio.test", "hunter22", types.AudienceStaff, false, nil)

	// A session left over from before the claim was removed
	accounts.CreateRefreshToken(ctx, &repository.RefreshToken{
		Token:     "stale-token",
		AccountID: staff.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	_, _, _, err := auth.StaffLogin(ctx, "staff@studio.test", "hunter22")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, accounts.tokenCountFor(staff.ID))
}

func TestStaffLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	_, _, _, err := auth.StaffLogin(ctx, "admin@studio.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = auth.StaffLogin(ctx, "nobody@studio.test", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestStaffLoginRejectsClientAccounts(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	clientID := "client-1"
	seedAccount(t, accounts, "dana@acme.test", "hunter22", types.AudienceClient, false, &clientID)

	_, _, _, err := auth.StaffLogin(ctx, "dana@acme.test", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientLogin(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	clientID := "client-1"
	seedAccount(t, accounts, "dana@acme.test", "hunter22", types.AudienceClient, false, &clientID)

	account, access, refresh, err := auth.ClientLogin(ctx, "dana@acme.test", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, account.ClientID)
	assert.Equal(t, clientID, *account.ClientID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	// Staff credentials never open a portal session
	seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)
	_, _, _, err = auth.ClientLogin(ctx, "admin@studio.test", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientRegister(t *testing.T) {
	ctx := context.Background()
	auth, accounts, clients := newTestAuth(t)

	company := "Acme Outdoors"
	account, access, refresh, err := auth.ClientRegister(ctx, "Dana Whitfield", "dana@acme.test", "hunter22", &company, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, types.AudienceClient, account.Audience)
	require.NotNil(t, account.ClientID)

	profile, err := clients.FindByID(ctx, *account.ClientID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Dana Whitfield", profile.Name)
	require.NotNil(t, profile.CompanyName)
	assert.Equal(t, company, *profile.CompanyName)

	_, _, _, err = auth.ClientRegister(ctx, "Dana Again", "dana@acme.test", "hunter22", nil, nil)
	assert.ErrorIs(t, err, ErrAccountExists)

	stored, err := accounts.FindByEmail(ctx, "dana@acme.test")
	require.NoError(t, err)
	assert.Equal(t, account.ID, stored.ID)
}

func TestRefreshTokenRotation(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	_, _, refresh, err := auth.StaffLogin(ctx, "admin@studio.test", "hunter22")
	require.NoError(t, err)

	access2, refresh2, err := auth.RefreshToken(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access2)
	assert.NotEqual(t, refresh, refresh2)

	// The old token was consumed by the rotation
	_, _, err = auth.RefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The new one still works
	_, _, err = auth.RefreshToken(ctx, refresh2)
	assert.NoError(t, err)
}

func TestRefreshTokenExpired(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	admin := seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	accounts.CreateRefreshToken(ctx, &repository.RefreshToken{
		Token:     "expired-token",
		AccountID: admin.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, _, err := auth.RefreshToken(ctx, "expired-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAfterAdminClaimRemoved(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	admin := seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	_, _, refresh, err := auth.StaffLogin(ctx, "admin@studio.test", "hunter22")
	require.NoError(t, err)

	require.NoError(t, accounts.SetAdmin(ctx, admin.ID, false))

	_, _, err = auth.RefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, accounts.tokenCountFor(admin.ID))
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	_, _, refresh, err := auth.StaffLogin(ctx, "admin@studio.test", "hunter22")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, refresh))
	_, _, err = auth.RefreshToken(ctx, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	staff := seedAccount(t, accounts, "staff@studio.test", "hunter22", types.AudienceStaff, false, nil)

	require.NoError(t, auth.SetAdmin(ctx, "staff@studio.test"))
	updated, err := accounts.FindByID(ctx, staff.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	assert.ErrorIs(t, auth.SetAdmin(ctx, "nobody@studio.test"), ErrNotFound)
}

func TestPrincipalFromToken(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	clientID := "client-7"
	account := seedAccount(t, accounts, "dana@acme.test", "hunter22", types.AudienceClient, false, &clientID)

	_, access, _, err := auth.ClientLogin(ctx, "dana@acme.test", "hunter22")
	require.NoError(t, err)

	token, err := auth.ValidateToken(access)
	require.NoError(t, err)

	principal, err := auth.PrincipalFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, account.ID, principal.AccountID)
	assert.Equal(t, types.AudienceClient, principal.Audience)
	assert.False(t, principal.IsAdmin)
	assert.Equal(t, clientID, principal.ClientID)
}

func TestValidateTokenRejectsForgedSignature(t *testing.T) {
	ctx := context.Background()
	auth, accounts, _ := newTestAuth(t)
	seedAccount(t, accounts, "admin@studio.test", "hunter22", types.AudienceStaff, true, nil)

	_, access, _, err := auth.StaffLogin(ctx, "admin@studio.test", "hunter22")
	require.NoError(t, err)

	other := NewAuthService(&config.Config{JWTSecret: "different-secret", JWTExpiry: 1, RefreshExpiry: 1}, accounts, newFakeClientRepo())
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}
