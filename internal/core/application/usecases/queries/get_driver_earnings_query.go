package queries

import (
	"errors"

	"loadmatrix/internal/core/domain/model/kernel"
	"loadmatrix/internal/pkg/errs"
	"loadmatrix/internal/pkg/guard"
)

var ErrGetDriverEarningsQueryIsNotConstructed = errors.New(
	"GetDriverEarningsQuery must be created via NewGetDriverEarningsQuery constructor",
)

// GetDriverEarningsQuery retrieves a driver's delivery and earnings figures.
type GetDriverEarningsQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverEarningsQuery creates an earnings query for the given driver.
func NewGetDriverEarningsQuery(driverID kernel.UUID) (GetDriverEarningsQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverEarningsQuery{}, errs.NewValueIsRequiredError("driverID")
	}
	return GetDriverEarningsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// DriverID returns the driver whose earnings are summarized.
func (q GetDriverEarningsQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Validate ensures the query was created through the constructor.
func (q GetDriverEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverEarningsQueryIsNotConstructed)
}

// GetDriverEarningsQueryResponse summarizes a driver's completed work: the
// count of delivered orders and the driver-share total across them, plus the
// running rating from the profile.
type GetDriverEarningsQueryResponse struct {
	DriverID       kernel.UUID
	DeliveredCount int
	TotalEarnings  float64
	Rating         float64
	RatingCount    int
}
