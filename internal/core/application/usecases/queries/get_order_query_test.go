package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	actor := mustActor(t, 10, user.Customer)
	query, err := queries.NewGetOrderQuery(actor, mustID(t, 1))
	require.NoError(t, err)
	assert.Equal(t, actor, query.Actor())
	assert.Equal(t, int64(1), query.OrderID().Int64())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(mustActor(t, 10, user.Customer), kernel.ID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}
