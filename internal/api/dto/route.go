package dto

type RoutePreviewRequest struct {
	Passengers int              `json:"passengers"`
	TripDays   []TripDayRequest `json:"trip_days"`
}

type RouteTotalsResponse struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
	Stops           int `json:"stops"`
	BookingMinutes  int `json:"booking_minutes"`
}

type LegResponse struct {
	From            string `json:"from"`
	To              string `json:"to"`
	DistanceMeters  int    `json:"distance_meters"`
	DurationSeconds int    `json:"duration_seconds"`
}

type FailedLegResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

type DayRouteResponse struct {
	DayNumber      int                 `json:"day_number"`
	Date           string              `json:"date"`
	StartTime      string              `json:"start_time"`
	EndTime        string              `json:"end_time"`
	EndsNextDay    bool                `json:"ends_next_day"`
	BookingHours   int                 `json:"booking_hours"`
	BookingMinutes int                 `json:"booking_minutes"`
	Legs           []LegResponse       `json:"legs"`
	FailedLegs     []FailedLegResponse `json:"failed_legs"`
	Totals         RouteTotalsResponse `json:"totals"`
}

type RouteResponse struct {
	Totals   RouteTotalsResponse `json:"totals"`
	TripDays []DayRouteResponse  `json:"trip_days"`
}

type RoutePreviewResponse struct {
	Route         RouteResponse `json:"route"`
	FailedLegs    int           `json:"failed_legs"`
	FormattedText string        `json:"formatted_text"`
}
