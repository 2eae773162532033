package mongodb

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/jhoicas/textile-market/internal/domain/entity"
)

type priced struct {
	Price decimal.Decimal `bson:"price"`
}

func TestDecimalCodec_IdaYVuelta(t *testing.T) {
	reg := NewRegistry()

	raw, err := bson.MarshalWithRegistry(reg, priced{Price: decimal.RequireFromString("150.50")})
	require.NoError(t, err)
	assert.Equal(t, bsontype.Decimal128, bson.Raw(raw).Lookup("price").Type)

	var out priced
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.True(t, out.Price.Equal(decimal.RequireFromString("150.5")), "got %s", out.Price)
}

func TestDecimalCodec_TiposNumericos(t *testing.T) {
	reg := NewRegistry()
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"double", 12.5, "12.5"},
		{"int32", int32(7), "7"},
		{"int64", int64(1200), "1200"},
		{"string", "99.99", "99.99"},
		{"null", nil, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"price": tc.in})
			require.NoError(t, err)
			var out priced
			require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
			assert.Equal(t, tc.want, out.Price.String())
		})
	}

	raw, err := bson.Marshal(bson.M{"price": true})
	require.NoError(t, err)
	var out priced
	assert.Error(t, bson.UnmarshalWithRegistry(reg, raw, &out))
}

func TestDecimalCodec_Producto(t *testing.T) {
	reg := NewRegistry()
	p := entity.Product{
		ID:           "p1",
		Name:         "Poplin",
		PricePerUnit: decimal.RequireFromString("135"),
		MinPrice:     decimal.RequireFromString("120"),
		MaxPrice:     decimal.RequireFromString("150.5"),
		PriceTiers:   []entity.PriceTier{{MinQty: 100, Price: decimal.RequireFromString("128.75")}},
	}
	raw, err := bson.MarshalWithRegistry(reg, p)
	require.NoError(t, err)
	assert.Equal(t, "p1", bson.Raw(raw).Lookup("_id").StringValue())

	var out entity.Product
	require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
	assert.Equal(t, "120-150.5", out.PriceRange())
	require.Len(t, out.PriceTiers, 1)
	assert.Equal(t, "128.75", out.PriceTiers[0].Price.String())
}
