package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()

	t.Run("register with a tenant name bootstraps a workshop", func(t *testing.T) {
		s := newTestSetup(t)

		workshop := "Hide & Stitch"
		user, err := s.Auth.Register(ctx, &RegisterInput{
			FirstName:  "Wanjiru",
			LastName:   "Njoroge",
			Email:      "wanjiru@example.com",
			Password:   "correct horse battery",
			TenantName: &workshop,
		})
		require.NoError(t, err)

		output, err := s.Auth.Login(ctx, &LoginInput{
			Email:    "wanjiru@example.com",
			Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, output.User.ID)
		assert.NotEmpty(t, output.AccessToken)
		assert.NotEmpty(t, output.RefreshToken)

		tenants, err := s.Tenants.List(ctx, access.Elevated(), defaultParams())
		require.NoError(t, err)
		require.Len(t, tenants.Items, 1)
		assert.Equal(t, "Hide & Stitch", tenants.Items[0].Name)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		s := newTestSetup(t)

		_, err := s.Auth.Register(ctx, &RegisterInput{
			FirstName: "Wanjiru", LastName: "Njoroge",
			Email: "wanjiru@example.com", Password: "correct horse battery",
		})
		require.NoError(t, err)

		_, err = s.Auth.Register(ctx, &RegisterInput{
			FirstName: "Other", LastName: "Person",
			Email: "wanjiru@example.com", Password: "another password",
		})
		require.Error(t, err)
		assert.Equal(t, "Email already registered", apperror.GetAppError(err).Message)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		s := newTestSetup(t)

		_, err := s.Auth.Register(ctx, &RegisterInput{
			FirstName: "Wanjiru", LastName: "Njoroge",
			Email: "wanjiru@example.com", Password: "correct horse battery",
		})
		require.NoError(t, err)

		_, err = s.Auth.Login(ctx, &LoginInput{
			Email:    "wanjiru@example.com",
			Password: "wrong password",
		})
		require.Error(t, err)
		assert.Equal(t, apperror.ErrInvalidCredentials.Message, apperror.GetAppError(err).Message)

		_, err = s.Auth.Login(ctx, &LoginInput{
			Email:    "nobody@example.com",
			Password: "correct horse battery",
		})
		require.Error(t, err)
		assert.Equal(t, apperror.ErrInvalidCredentials.Message, apperror.GetAppError(err).Message)
	})

	t.Run("refresh rotates the token pair", func(t *testing.T) {
		s := newTestSetup(t)

		_, err := s.Auth.Register(ctx, &RegisterInput{
			FirstName: "Wanjiru", LastName: "Njoroge",
			Email: "wanjiru@example.com", Password: "correct horse battery",
		})
		require.NoError(t, err)

		output, err := s.Auth.Login(ctx, &LoginInput{
			Email:    "wanjiru@example.com",
			Password: "correct horse battery",
		})
		require.NoError(t, err)

		refreshed, err := s.Auth.Refresh(ctx, output.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)

		_, err = s.Auth.Refresh(ctx, "not-a-token")
		require.Error(t, err)
		assert.Equal(t, 401, apperror.GetAppError(err).Code)
	})
}

func TestTenantService(t *testing.T) {
	ctx := context.Background()

	t.Run("creation and deletion need the elevated scope", func(t *testing.T) {
		s := newTestSetup(t)
		_, scope := s.createTenant("Hide & Stitch")

		_, err := s.Tenants.Create(ctx, scope, &CreateTenantInput{Name: "Sneaky Tenant"})
		require.Error(t, err)
		assert.Equal(t, 403, apperror.GetAppError(err).Code)

		tenant, err := s.Tenants.Create(ctx, access.Elevated(), &CreateTenantInput{Name: "Second Works"})
		require.NoError(t, err)

		err = s.Tenants.Delete(ctx, scope, tenant.ID)
		require.Error(t, err)
		assert.Equal(t, 403, apperror.GetAppError(err).Code)

		require.NoError(t, s.Tenants.Delete(ctx, access.Elevated(), tenant.ID))
	})

	t.Run("tenants cannot read each other", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		otherTenantID, _ := s.createTenant("Rival Works")

		own, err := s.Tenants.Get(ctx, scope, tenantID)
		require.NoError(t, err)
		assert.Equal(t, "Hide & Stitch", own.Name)

		_, err = s.Tenants.Get(ctx, scope, otherTenantID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)

		listed, err := s.Tenants.List(ctx, scope, defaultParams())
		require.NoError(t, err)
		require.Len(t, listed.Items, 1)
		assert.Equal(t, tenantID, listed.Items[0].ID)
	})
}
