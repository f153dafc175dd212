package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domains/availability/model"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func TestPriceAdjustment_AppliesTo(t *testing.T) {
	tests := []struct {
		name       string
		adjustment model.PriceAdjustment
		night      time.Time
		want       bool
	}{
		{
			name: "night inside range",
			adjustment: model.PriceAdjustment{
				StartDate: datePtr(2026, time.September, 10),
				EndDate:   datePtr(2026, time.September, 12),
			},
			night: time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name: "range start is inclusive",
			adjustment: model.PriceAdjustment{
				StartDate: datePtr(2026, time.September, 10),
				EndDate:   datePtr(2026, time.September, 12),
			},
			night: time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name: "range end is exclusive",
			adjustment: model.PriceAdjustment{
				StartDate: datePtr(2026, time.September, 10),
				EndDate:   datePtr(2026, time.September, 12),
			},
			night: time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name: "night before range",
			adjustment: model.PriceAdjustment{
				StartDate: datePtr(2026, time.September, 10),
				EndDate:   datePtr(2026, time.September, 12),
			},
			night: time.Date(2026, time.September, 9, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name: "explicit date list match",
			adjustment: model.PriceAdjustment{
				Dates: "2026-09-10, 2026-09-14",
			},
			night: time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC),
			want:  true,
		},
		{
			name: "explicit date list no match",
			adjustment: model.PriceAdjustment{
				Dates: "2026-09-10, 2026-09-14",
			},
			night: time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name: "date list takes precedence over range",
			adjustment: model.PriceAdjustment{
				StartDate: datePtr(2026, time.September, 10),
				EndDate:   datePtr(2026, time.September, 12),
				Dates:     "2026-09-20",
			},
			night: time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
			want:  false,
		},
		{
			name:       "no range and no dates",
			adjustment: model.PriceAdjustment{},
			night:      time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.adjustment.AppliesTo(tt.night))
		})
	}
}

func TestPriceAdjustment_Apply(t *testing.T) {
	tests := []struct {
		name       string
		adjustment model.PriceAdjustment
		base       float64
		want       float64
	}{
		{
			name:       "percentage markup",
			adjustment: model.PriceAdjustment{Type: model.AdjustmentTypePercentage, Value: 25},
			base:       100000,
			want:       125000,
		},
		{
			name:       "percentage discount",
			adjustment: model.PriceAdjustment{Type: model.AdjustmentTypePercentage, Value: -10},
			base:       100000,
			want:       90000,
		},
		{
			name:       "nominal markup",
			adjustment: model.PriceAdjustment{Type: model.AdjustmentTypeNominal, Value: 50000},
			base:       100000,
			want:       150000,
		},
		{
			name:       "nominal discount",
			adjustment: model.PriceAdjustment{Type: model.AdjustmentTypeNominal, Value: -20000},
			base:       100000,
			want:       80000,
		},
		{
			name:       "unknown type keeps base price",
			adjustment: model.PriceAdjustment{Type: "SURGE", Value: 50},
			base:       100000,
			want:       100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.adjustment.Apply(tt.base), 0.0001)
		})
	}
}
