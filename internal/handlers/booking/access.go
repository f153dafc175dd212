package booking

import (
	"context"
	"stayhub/internal/domains/booking/model/dto"
	"stayhub/shared/constant"
	"stayhub/shared/failure"
	"strconv"
)

// canAccess applies the visibility rule: guests see their own bookings, tenants the
// bookings on their properties, admins everything.
func (handler *Handler) canAccess(ctx context.Context, booking dto.BookingResponse) bool {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch role {
	case constant.RoleAdmin:
		return true
	case constant.RoleTenant:
		tenant, _ := ctx.Value(constant.ContextKeyTenantID).(string)

		return tenant != "" && booking.TenantID == tenant
	default:
		user, _ := ctx.Value(constant.ContextKeyUserID).(string)

		return user != "" && booking.UserID == user
	}
}

func failureRestricted() error {
	return failure.ResourceRestrictedError
}

func parsePositiveInt(raw string) (int, error) {
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return 0, failure.BadRequestFromString("guests must be a positive integer") //nolint:wrapcheck
	}

	return parsed, nil
}
