package queries

import (
	"context"

	"loadmatrix/internal/core/domain/services"
)

// GetFareQuoteQueryHandler prices prospective shipments. Unlike the other
// query handlers it needs no database connection: a quote is a pure function
// of the route and the cargo weight.
type GetFareQuoteQueryHandler struct {
	fareCalculator services.FareCalculator
}

// NewGetFareQuoteQueryHandler creates a handler that quotes with the given
// calculator.
func NewGetFareQuoteQueryHandler(fareCalculator services.FareCalculator) GetFareQuoteQueryHandler {
	return GetFareQuoteQueryHandler{fareCalculator: fareCalculator}
}

// Handle computes the quote for the requested route and weight.
func (h GetFareQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetFareQuoteQuery,
) (GetFareQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFareQuoteQueryResponse{}, err
	}

	distanceKm, err := query.Pickup().DistanceKmTo(query.Drop())
	if err != nil {
		return GetFareQuoteQueryResponse{}, err
	}

	fare, err := h.fareCalculator.Calculate(distanceKm, query.WeightKg())
	if err != nil {
		return GetFareQuoteQueryResponse{}, err
	}

	return GetFareQuoteQueryResponse{
		DistanceKm:  distanceKm,
		Total:       fare.Total(),
		DriverShare: fare.DriverShare(),
		Commission:  fare.Commission(),
	}, nil
}
