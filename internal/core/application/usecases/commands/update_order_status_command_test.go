package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	actor := mustActor(t, 99, user.Business)
	cmd, err := commands.NewUpdateOrderStatusCommand(actor, mustID(t, 1), order.Accepted)
	require.NoError(t, err)
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, int64(1), cmd.OrderID().Int64())
	assert.Equal(t, order.Accepted, cmd.NewStatus())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(mustActor(t, 99, user.Business), kernel.ID{}, order.Accepted)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(mustActor(t, 99, user.Business), mustID(t, 1), order.Unknown)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
