package model

import (
	"stayhub/shared/constant"
	"stayhub/shared/model"
	"strings"
	"time"
)

const (
	BlockTableName  = "room_availabilities"
	BlockEntityName = "room_block"

	BlockFieldID          = "id"
	BlockFieldRoomID      = "room_id"
	BlockFieldDate        = "date"
	BlockFieldIsAvailable = "is_available"
)

const (
	AdjustmentTableName  = "price_adjustments"
	AdjustmentEntityName = "price_adjustment"

	AdjustmentFieldID        = "id"
	AdjustmentFieldRoomID    = "room_id"
	AdjustmentFieldStartDate = "start_date"
	AdjustmentFieldEndDate   = "end_date"
	AdjustmentFieldDates     = "dates"
	AdjustmentFieldType      = "adjustment_type"
	AdjustmentFieldValue     = "value"
)

const (
	AdjustmentTypePercentage = "PERCENTAGE"
	AdjustmentTypeNominal    = "NOMINAL"
)

// RoomBlock marks a single (room, date) as explicitly unavailable. Absence of a row
// means the date is bookable.
type RoomBlock struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	Date        time.Time `db:"date"`
	IsAvailable bool      `db:"is_available"`
	model.Metadata
}

// PriceAdjustment is a pricing rule on a room, either over a half-open
// [StartDate, EndDate) range or an explicit comma-joined list of dates.
type PriceAdjustment struct {
	ID        string     `db:"id"`
	RoomID    string     `db:"room_id"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Dates     string     `db:"dates"`
	Type      string     `db:"adjustment_type"`
	Value     float64    `db:"value"`
	model.Metadata
}

// AppliesTo reports whether the adjustment covers the given night.
func (adj *PriceAdjustment) AppliesTo(night time.Time) bool {
	if adj.Dates != "" {
		formatted := night.Format(constant.DateOnlyFormat)
		for _, d := range strings.Split(adj.Dates, ",") {
			if strings.TrimSpace(d) == formatted {
				return true
			}
		}

		return false
	}

	if adj.StartDate == nil || adj.EndDate == nil {
		return false
	}

	return !night.Before(*adj.StartDate) && night.Before(*adj.EndDate)
}

// Apply returns the nightly price after the adjustment. Percentage adjustments scale the
// base rate; nominal adjustments add (or subtract, for negative values) a fixed amount.
func (adj *PriceAdjustment) Apply(base float64) float64 {
	switch adj.Type {
	case AdjustmentTypePercentage:
		return base + base*adj.Value/100
	case AdjustmentTypeNominal:
		return base + adj.Value
	default:
		return base
	}
}
