package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ctrln3rd/lunara-watch/internal/insights"
	"github.com/ctrln3rd/lunara-watch/internal/locations"
	"github.com/ctrln3rd/lunara-watch/internal/types"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// target is a resolved place to fetch a forecast for.
type target struct {
	name string
	lat  float64
	lon  float64
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, req *http.Request, status int, msg string) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// resolveTarget picks the place a request refers to: explicit lat/lon
// coordinates win, otherwise the named saved-location type (defaulting to
// "current") is looked up in the store.
func (s *Server) resolveTarget(locType string, lat, lon *float64) (target, int, error) {
	if lat != nil && lon != nil {
		return target{name: fmt.Sprintf("%.4f,%.4f", *lat, *lon), lat: *lat, lon: *lon}, 0, nil
	}

	if locType == "" {
		locType = string(locations.TypeCurrent)
	}
	loc, err := s.locations.Get(locations.LocationType(locType))
	if err != nil {
		return target{}, http.StatusNotFound, err
	}
	return target{name: loc.Name, lat: loc.Latitude, lon: loc.Longitude}, 0, nil
}

func parseCoord(q string) *float64 {
	if q == "" {
		return nil
	}
	v, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (s *Server) targetFromQuery(req *http.Request) (target, int, error) {
	q := req.URL.Query()
	return s.resolveTarget(q.Get("location"), parseCoord(q.Get("lat")), parseCoord(q.Get("lon")))
}

type queryRequest struct {
	Query     string   `json:"query"`
	Location  string   `json:"location,omitempty"`
	Latitude  *float64 `json:"lat,omitempty"`
	Longitude *float64 `json:"lon,omitempty"`
}

type queryResponse struct {
	RequestID     string       `json:"request_id"`
	Query         string       `json:"query"`
	Intent        types.Intent `json:"intent"`
	Answer        string       `json:"answer"`
	MatchedPoints int          `json:"matched_points"`
	Location      string       `json:"location"`
	Provider      string       `json:"provider"`
	FetchedAt     time.Time    `json:"fetched_at"`
}

// handleQuery runs the full pipeline for one natural-language query:
// classify, fetch the location's forecast, interpret.
func (s *Server) handleQuery(w http.ResponseWriter, req *http.Request) {
	var body queryRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		s.writeError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Query == "" {
		s.writeError(w, req, http.StatusBadRequest, "query is required")
		return
	}

	tgt, status, err := s.resolveTarget(body.Location, body.Latitude, body.Longitude)
	if err != nil {
		s.writeError(w, req, status, err.Error())
		return
	}

	requestID := uuid.New().String()
	intent := s.classifier.Classify(body.Query)

	entry, err := s.manager.Get(req.Context(), tgt.name, tgt.lat, tgt.lon)
	if err != nil {
		s.logger.Errorw("forecast fetch failed", "request_id", requestID, "location", tgt.name, "error", err)
		s.writeError(w, req, http.StatusBadGateway, "forecast unavailable")
		return
	}

	answer, count := s.interpreter.Respond(entry.Dataset, &intent)

	s.logger.Infow("answered query",
		"request_id", requestID,
		"topic", intent.Topic,
		"timeframe", intent.TimeframeCategory,
		"matched", count,
		"location", tgt.name)

	s.formatter.WriteResponse(w, req, queryResponse{
		RequestID:     requestID,
		Query:         body.Query,
		Intent:        intent,
		Answer:        answer,
		MatchedPoints: count,
		Location:      tgt.name,
		Provider:      entry.Provider,
		FetchedAt:     entry.FetchedAt,
	})
}

type forecastResponse struct {
	Location  string                 `json:"location"`
	Provider  string                 `json:"provider"`
	FetchedAt time.Time              `json:"fetched_at"`
	Forecast  *types.ForecastDataset `json:"forecast"`
}

func (s *Server) handleForecast(w http.ResponseWriter, req *http.Request) {
	tgt, status, err := s.targetFromQuery(req)
	if err != nil {
		s.writeError(w, req, status, err.Error())
		return
	}

	entry, err := s.manager.Get(req.Context(), tgt.name, tgt.lat, tgt.lon)
	if err != nil {
		s.writeError(w, req, http.StatusBadGateway, "forecast unavailable")
		return
	}

	s.formatter.WriteResponse(w, req, forecastResponse{
		Location:  tgt.name,
		Provider:  entry.Provider,
		FetchedAt: entry.FetchedAt,
		Forecast:  entry.Dataset,
	})
}

type insightsResponse struct {
	Location  string             `json:"location"`
	Provider  string             `json:"provider"`
	FetchedAt time.Time          `json:"fetched_at"`
	Insights  []insights.Insight `json:"insights"`
}

func (s *Server) handleInsights(w http.ResponseWriter, req *http.Request) {
	tgt, status, err := s.targetFromQuery(req)
	if err != nil {
		s.writeError(w, req, status, err.Error())
		return
	}

	entry, err := s.manager.Get(req.Context(), tgt.name, tgt.lat, tgt.lon)
	if err != nil {
		s.writeError(w, req, http.StatusBadGateway, "forecast unavailable")
		return
	}

	s.formatter.WriteResponse(w, req, insightsResponse{
		Location:  tgt.name,
		Provider:  entry.Provider,
		FetchedAt: entry.FetchedAt,
		Insights:  insights.All(entry.Dataset, s.now()),
	})
}

func (s *Server) handleListLocations(w http.ResponseWriter, req *http.Request) {
	all, err := s.locations.List()
	if err != nil {
		s.writeError(w, req, http.StatusInternalServerError, err.Error())
		return
	}
	if all == nil {
		all = []locations.Location{}
	}
	s.formatter.WriteResponse(w, req, all)
}

func (s *Server) handleGetLocation(w http.ResponseWriter, req *http.Request) {
	locType := mux.Vars(req)["type"]
	loc, err := s.locations.Get(locations.LocationType(locType))
	if err != nil {
		s.writeError(w, req, http.StatusNotFound, err.Error())
		return
	}
	s.formatter.WriteResponse(w, req, loc)
}

func (s *Server) handleSaveLocation(w http.ResponseWriter, req *http.Request) {
	var loc locations.Location
	if err := json.NewDecoder(req.Body).Decode(&loc); err != nil {
		s.writeError(w, req, http.StatusBadRequest, "invalid request body")
		return
	}
	// The path segment is authoritative for the type.
	loc.Type = locations.LocationType(mux.Vars(req)["type"])

	if err := s.locations.Save(loc); err != nil {
		s.writeError(w, req, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := s.locations.Get(loc.Type)
	if err != nil {
		s.writeError(w, req, http.StatusInternalServerError, err.Error())
		return
	}
	s.formatter.WriteResponse(w, req, saved)
}

func (s *Server) handleDeleteLocation(w http.ResponseWriter, req *http.Request) {
	locType := locations.LocationType(mux.Vars(req)["type"])

	// Drop the cached forecast along with the location.
	if loc, err := s.locations.Get(locType); err == nil {
		s.manager.Delete(loc.Latitude, loc.Longitude)
	}

	if err := s.locations.Delete(locType); err != nil {
		s.writeError(w, req, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, req *http.Request) {
	s.formatter.WriteResponse(w, req, map[string]string{"status": "ok"})
}
