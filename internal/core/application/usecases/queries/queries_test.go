package queries_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(t *testing.T) identity.Caller {
	t.Helper()
	caller, err := identity.NewCaller(kernel.NewUUID(), false, nil)
	require.NoError(t, err)
	return caller
}

func TestNewGetMenuItemsQuery_Valid(t *testing.T) {
	query := queries.NewGetMenuItemsQuery()
	require.NoError(t, query.Validate())
}

func TestGetMenuItemsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetMenuItemsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetMenuItemsQueryIsNotConstructed)
}

func TestNewGetMenuItemQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetMenuItemQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("invalid item id", func(t *testing.T) {
		_, err := queries.NewGetMenuItemQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetCartQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetCartQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("invalid caller id", func(t *testing.T) {
		_, err := queries.NewGetCartQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetOrdersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetOrdersQuery(customer(t))
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrdersQuery(identity.AnonymousCaller())
		require.Error(t, err)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(customer(t), kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(identity.AnonymousCaller(), kernel.NewUUID())
		require.Error(t, err)
	})
}

func TestNewGetGroupMembersQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetGroupMembersQuery(identity.RoleManager)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := queries.NewGetGroupMembersQuery(identity.RoleUnknown)
		require.Error(t, err)
	})
}
