package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem(order.GarmentShirt, 2, kernel.Money(500))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, order.GarmentShirt, item.Garment())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, kernel.Money(500), item.UnitPrice())
		assert.Equal(t, kernel.Money(1000), item.Total())
	})

	t.Run("should allow free items", func(t *testing.T) {
		item, err := order.NewItem(order.GarmentBedding, 1, kernel.Money(0))

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(0), item.Total())
	})

	t.Run("should reject invalid garment kind", func(t *testing.T) {
		_, err := order.NewItem(order.GarmentUnknown, 1, kernel.Money(100))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -10} {
			_, err := order.NewItem(order.GarmentShirt, quantity, kernel.Money(100))

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative unit price", func(t *testing.T) {
		_, err := order.NewItem(order.GarmentShirt, 1, kernel.Money(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
