package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateOrderCommand_ValidInput(t *testing.T) {
	actor := mustActor(t, 10, user.Customer)
	cmd, err := commands.NewRateOrderCommand(actor, mustID(t, 1), mustID(t, 20), 5, "impeccable")
	require.NoError(t, err)
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, int64(1), cmd.OrderID().Int64())
	assert.Equal(t, int64(20), cmd.ToUserID().Int64())
	assert.Equal(t, 5, cmd.Score())
	assert.Equal(t, "impeccable", cmd.Comment())
}

func TestNewRateOrderCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewRateOrderCommand(mustActor(t, 10, user.Customer), mustID(t, 1), kernel.ID{}, 5, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}
