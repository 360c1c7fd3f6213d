package api

import (
	"net/http"
	"time"

	"charter-quote-service/internal/api/handlers"
	"charter-quote-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	quotes ports.QuoteRepository,
	responses ports.ResponseRepository,
	provider ports.DistanceProvider,
	callDelay time.Duration,
	businessName string,
) http.Handler {
	mux := http.NewServeMux()

	quoteHandler := &handlers.QuoteHandler{
		Quotes:    quotes,
		Responses: responses,
		Provider:  provider,
		CallDelay: callDelay,
	}
	routeHandler := &handlers.RouteHandler{
		Provider:  provider,
		CallDelay: callDelay,
	}
	respondHandler := &handlers.RespondHandler{
		Quotes:       quotes,
		Responses:    responses,
		BusinessName: businessName,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/quotes", quoteHandler.Handle)
	mux.HandleFunc("/quotes/respond", respondHandler.Respond)
	mux.HandleFunc("/routes/preview", routeHandler.Preview)

	return loggingMiddleware(mux)
}
