package user_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create valid actor", func(t *testing.T) {
		actor, err := user.NewActor(mustID(t, 7), user.Customer)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, int64(7), actor.ID().Int64())
		assert.Equal(t, user.Customer, actor.Role())
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := user.NewActor(kernel.ID{}, user.Customer)
		require.Error(t, err)
	})

	t.Run("should reject invalid role", func(t *testing.T) {
		_, err := user.NewActor(mustID(t, 7), user.Unknown)
		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value actor fails validation", func(t *testing.T) {
		var actor user.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, user.ErrActorIsNotConstructed, err)
	})
}
