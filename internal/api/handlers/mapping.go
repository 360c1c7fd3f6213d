package handlers

import (
	"charter-quote-service/internal/api/dto"
	"charter-quote-service/internal/domain"
	"charter-quote-service/internal/services"
)

func toTripDays(in []dto.TripDayRequest) []domain.TripDay {
	out := make([]domain.TripDay, 0, len(in))
	for _, d := range in {
		out = append(out, domain.TripDay{
			Date:        d.Date,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			EndsNextDay: d.EndsNextDay,
			Pickup:      d.Pickup,
			Dropoffs:    d.Dropoffs,
		})
	}
	return out
}

func fromTripDays(in []domain.TripDay) []dto.TripDayRequest {
	out := make([]dto.TripDayRequest, 0, len(in))
	for _, d := range in {
		out = append(out, dto.TripDayRequest{
			Date:        d.Date,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			EndsNextDay: d.EndsNextDay,
			Pickup:      d.Pickup,
			Dropoffs:    d.Dropoffs,
		})
	}
	return out
}

func toTotalsResponse(t domain.RouteTotals) dto.RouteTotalsResponse {
	return dto.RouteTotalsResponse{
		DistanceMeters:  t.DistanceMeters,
		DurationSeconds: t.DurationSeconds,
		Stops:           t.Stops,
		BookingMinutes:  t.BookingMinutes,
	}
}

func toRouteResponse(route *domain.RouteAggregate) *dto.RouteResponse {
	if route == nil {
		return nil
	}

	res := &dto.RouteResponse{
		Totals:   toTotalsResponse(route.Totals),
		TripDays: make([]dto.DayRouteResponse, 0, len(route.TripDays)),
	}

	for _, day := range route.TripDays {
		legs := make([]dto.LegResponse, 0, len(day.Legs))
		for _, leg := range day.Legs {
			legs = append(legs, dto.LegResponse{
				From:            leg.From,
				To:              leg.To,
				DistanceMeters:  leg.DistanceMeters,
				DurationSeconds: leg.DurationSeconds,
			})
		}

		failed := make([]dto.FailedLegResponse, 0, len(day.FailedLegs))
		for _, leg := range day.FailedLegs {
			failed = append(failed, dto.FailedLegResponse{
				From:   leg.From,
				To:     leg.To,
				Reason: leg.Reason,
			})
		}

		res.TripDays = append(res.TripDays, dto.DayRouteResponse{
			DayNumber:      day.DayNumber,
			Date:           day.Date,
			StartTime:      day.StartTime,
			EndTime:        day.EndTime,
			EndsNextDay:    day.EndsNextDay,
			BookingHours:   day.BookingHours,
			BookingMinutes: day.BookingMinutes,
			Legs:           legs,
			FailedLegs:     failed,
			Totals:         toTotalsResponse(day.Totals),
		})
	}

	return res
}

func toQuoteResponse(q *domain.Quote, withDetail bool) dto.QuoteResponse {
	res := dto.QuoteResponse{
		QuoteID:     q.QuoteID,
		SubmittedAt: q.SubmittedAt,
		Name:        q.Name,
		Email:       q.Email,
		Phone:       q.Phone,
		Company:     q.Company,
		Passengers:  q.Passengers,
		Description: q.Description,
		Notes:       q.UserNotes,
		Status:      q.Status(),
		TripDays:    fromTripDays(q.TripDays),
		Route:       toRouteResponse(q.Route),
	}

	if q.Response != nil {
		res.Response = &dto.SavedResponse{
			Amount:      q.Response.Amount,
			AgreedPrice: q.Response.AgreedPrice,
			Details:     q.Response.Details,
			Status:      q.Response.Status,
			AdminName:   q.Response.AdminName,
			SentAt:      q.Response.SentAt,
		}
	}

	if withDetail {
		res.Notable = services.NotableInfo(q)
	}

	return res
}
