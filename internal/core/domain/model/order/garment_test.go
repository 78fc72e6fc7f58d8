package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allGarmentKinds() []order.GarmentKind {
	return []order.GarmentKind{
		order.GarmentShirt,
		order.GarmentPants,
		order.GarmentDress,
		order.GarmentSuit,
		order.GarmentCoat,
		order.GarmentBedding,
		order.GarmentCurtains,
	}
}

func TestGarmentKind_Validate(t *testing.T) {
	t.Run("should validate every garment kind", func(t *testing.T) {
		for _, kind := range allGarmentKinds() {
			require.NoError(t, kind.Validate(), "%s", kind)
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, kind := range []order.GarmentKind{order.GarmentUnknown, order.GarmentKind(-1), order.GarmentKind(8)} {
			require.ErrorIs(t, kind.Validate(), errs.ErrValueIsInvalid)
		}
	})
}

func TestGarmentKindFromString(t *testing.T) {
	t.Run("round trips every valid kind", func(t *testing.T) {
		for _, kind := range allGarmentKinds() {
			parsed, err := order.GarmentKindFromString(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("rejects names outside the enumeration", func(t *testing.T) {
		for _, name := range []string{"", "unknown", "Shirt", "socks"} {
			_, err := order.GarmentKindFromString(name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}
