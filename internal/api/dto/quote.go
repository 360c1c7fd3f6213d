package dto

import "time"

type TripDayRequest struct {
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	EndsNextDay bool     `json:"ends_next_day"`
	Pickup      string   `json:"pickup"`
	Dropoffs    []string `json:"dropoffs"`
}

type SubmitQuoteRequest struct {
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Company     string           `json:"company"`
	Passengers  int              `json:"passengers"`
	Description string           `json:"description"`
	Notes       string           `json:"notes"`
	TripDays    []TripDayRequest `json:"trip_days"`
}

type SubmitQuoteResponse struct {
	QuoteID    string         `json:"quote_id"`
	FailedLegs int            `json:"failed_legs"`
	Route      *RouteResponse `json:"route"`
}

type QuoteResponse struct {
	QuoteID     string           `json:"quote_id"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Company     string           `json:"company"`
	Passengers  int              `json:"passengers"`
	Description string           `json:"description"`
	Notes       string           `json:"notes"`
	Status      string           `json:"status"`
	TripDays    []TripDayRequest `json:"trip_days"`
	Route       *RouteResponse   `json:"route,omitempty"`
	Response    *SavedResponse   `json:"response,omitempty"`
	Notable     []string         `json:"notable,omitempty"`
}

type SavedResponse struct {
	Amount      float64   `json:"amount"`
	AgreedPrice float64   `json:"agreed_price,omitempty"`
	Details     string    `json:"details,omitempty"`
	Status      string    `json:"status"`
	AdminName   string    `json:"admin_name"`
	SentAt      time.Time `json:"sent_at"`
}

type QuoteStatsResponse struct {
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	Sent            int     `json:"sent"`
	Accepted        int     `json:"accepted"`
	Declined        int     `json:"declined"`
	AcceptedRevenue float64 `json:"accepted_revenue"`
}

type ListQuotesResponse struct {
	Quotes []QuoteResponse    `json:"quotes"`
	Stats  QuoteStatsResponse `json:"stats"`
}

type RespondRequest struct {
	QuoteID     string  `json:"quote_id"`
	Amount      float64 `json:"amount"`
	AgreedPrice float64 `json:"agreed_price"`
	Details     string  `json:"details"`
	Status      string  `json:"status"`
	AdminName   string  `json:"admin_name"`
	EmailKind   string  `json:"email_kind"`
}

type RespondResponse struct {
	QuoteID      string `json:"quote_id"`
	Status       string `json:"status"`
	EmailSubject string `json:"email_subject"`
	EmailBody    string `json:"email_body"`
}
