package domain_test

import (
	"testing"

	"github.com/duka-app/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrder_DerivedAmount(t *testing.T) {
	tests := []struct {
		name  string
		order domain.Order
		want  string
	}{
		{
			name:  "whole price times quantity",
			order: domain.Order{Price: decimal.NewFromInt(400), Quantity: 3},
			want:  "1200",
		},
		{
			name:  "fractional price",
			order: domain.Order{Price: decimal.RequireFromString("19.99"), Quantity: 2},
			want:  "39.98",
		},
		{
			name:  "zero quantity yields zero",
			order: domain.Order{Price: decimal.NewFromInt(500), Quantity: 0},
			want:  "0",
		},
		{
			name:  "zero price yields zero",
			order: domain.Order{Price: decimal.Zero, Quantity: 10},
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.order.DerivedAmount()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
