package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/poiesic/talentbridge/assist"
	"github.com/poiesic/talentbridge/auth"
	"github.com/poiesic/talentbridge/booking"
	"github.com/poiesic/talentbridge/core"
	"github.com/poiesic/talentbridge/storage"
)

const (
	featuredMinRating = 4.8
	featuredLimit     = 6

	// providerAvatarIDOffset keeps provider avatars distinct from account ones.
	providerAvatarIDOffset = 40
)

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	reply := s.assistant.Respond(r.Context(), req.Message)
	if s.metrics != nil {
		switch typed := reply.(type) {
		case assist.PlanReply:
			s.metrics.ChatRequests.WithLabelValues(assist.TypeEventPlan).Inc()
			s.metrics.PlansGenerated.WithLabelValues(typed.EventType).Inc()
		case assist.ArtistsReply:
			s.metrics.ChatRequests.WithLabelValues(assist.TypeArtists).Inc()
		default:
			s.metrics.ChatRequests.WithLabelValues(assist.TypeText).Inc()
		}
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	writeJSON(w, http.StatusOK, s.assistant.Search(r.Context(), req.Message))
}

type providerListResponse struct {
	Artists    []core.Provider `json:"artists"`
	Categories []string        `json:"categories"`
	Cities     []string        `json:"cities"`
}

func (s *Server) handleListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := s.catalog.Load(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", err)
		return
	}

	q := r.URL.Query()
	filtered := filterProviders(providers, q.Get("category"), q.Get("location"), q.Get("search"), q.Get("price_max"))

	if q.Get("featured") == "true" {
		featured := make([]core.Provider, 0, featuredLimit)
		for _, p := range filtered {
			if p.Rating >= featuredMinRating {
				featured = append(featured, p)
				if len(featured) == featuredLimit {
					break
				}
			}
		}
		filtered = featured
	}

	writeJSON(w, http.StatusOK, providerListResponse{
		Artists:    filtered,
		Categories: distinct(providers, func(p core.Provider) string { return p.Category }),
		Cities:     distinct(providers, func(p core.Provider) string { return p.City }),
	})
}

// filterProviders narrows the catalog by the browse query parameters. Every
// parameter is optional and unparsable prices are ignored.
func filterProviders(providers []core.Provider, category, location, search, priceMax string) []core.Provider {
	filtered := providers
	if category != "" {
		filtered = keep(filtered, func(p core.Provider) bool {
			return strings.EqualFold(p.Category, category)
		})
	}
	if location != "" {
		needle := strings.ToLower(location)
		filtered = keep(filtered, func(p core.Provider) bool {
			return strings.Contains(strings.ToLower(p.Location), needle)
		})
	}
	if search != "" {
		needle := strings.ToLower(search)
		filtered = keep(filtered, func(p core.Provider) bool {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Category), needle) {
				return true
			}
			for _, skill := range p.Skills {
				if strings.Contains(strings.ToLower(skill), needle) {
					return true
				}
			}
			for _, et := range p.EventTypes {
				if strings.Contains(strings.ToLower(et), needle) {
					return true
				}
			}
			return false
		})
	}
	if priceMax != "" {
		if pm, err := strconv.Atoi(priceMax); err == nil {
			filtered = keep(filtered, func(p core.Provider) bool {
				return p.PriceMin <= pm
			})
		}
	}
	return filtered
}

func keep(providers []core.Provider, pred func(core.Provider) bool) []core.Provider {
	kept := make([]core.Provider, 0, len(providers))
	for _, p := range providers {
		if pred(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func distinct(providers []core.Provider, field func(core.Provider) string) []string {
	seen := make(map[string]bool, len(providers))
	values := make([]string, 0, len(providers))
	for _, p := range providers {
		v := field(p)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func (s *Server) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_provider_id", err)
		return
	}

	provider, err := s.catalog.Get(r.Context(), core.ID(id))
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "provider_not_found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, provider)
}

type createProviderRequest struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	City          string   `json:"city"`
	Location      string   `json:"location"`
	Category      string   `json:"category"`
	Skills        []string `json:"skills"`
	PriceMin      int      `json:"price_min"`
	PriceMax      int      `json:"price_max"`
	Availability  string   `json:"availability"`
	PortfolioLink string   `json:"portfolio_link"`
	Bio           string   `json:"bio"`
}

func (s *Server) handleCreateProvider(w http.ResponseWriter, r *http.Request) {
	var req createProviderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	location := req.Location
	if location == "" {
		location = req.City
	}

	// The append below allocates max+1 under the repository lock; predicting
	// it here only seeds the avatar reference.
	nextID := core.ID(1)
	if existing, err := s.catalog.Load(r.Context()); err == nil {
		for _, p := range existing {
			if p.Id >= nextID {
				nextID = p.Id + 1
			}
		}
	}

	provider := core.Provider{
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		City:          req.City,
		Location:      location,
		Skills:        req.Skills,
		PriceMin:      req.PriceMin,
		PriceMax:      req.PriceMax,
		Rating:        0,
		Reviews:       0,
		EventTypes:    []string{},
		Bio:           req.Bio,
		Badge:         "New Artist",
		Avatar:        fmt.Sprintf("https://i.pravatar.cc/150?img=%d", uint64(nextID)+providerAvatarIDOffset),
		Availability:  req.Availability,
		PortfolioLink: req.PortfolioLink,
		Email:         req.Email,
		Phone:         req.Phone,
	}

	added, err := s.catalog.Append(r.Context(), provider)
	if err != nil {
		if errors.Is(err, core.ErrInvalidProvider) {
			writeError(w, http.StatusBadRequest, "invalid_provider", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "catalog_unavailable", err)
		return
	}

	writeJSON(w, http.StatusCreated, added)
}

type bookResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Booking *core.Booking `json:"booking,omitempty"`
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_provider_id", err)
		return
	}

	// Empty body means defaults: minimum price, placeholder date and type
	var req booking.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	booked, err := s.bookings.Book(r.Context(), core.ID(id), req)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, bookResponse{Success: false, Message: "Artist not found"})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "booking_failed", err)
		return
	}

	if s.metrics != nil {
		s.metrics.BookingsConfirmed.Inc()
	}
	writeJSON(w, http.StatusOK, bookResponse{
		Success: true,
		Message: fmt.Sprintf("Booking confirmed for %s!", booked.ProviderName),
		Booking: booked,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountPayload struct {
	ID     core.ID `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Avatar string  `json:"avatar"`
}

func toAccountPayload(a *core.Account) accountPayload {
	return accountPayload{
		ID:     a.Id,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role.String(),
		Avatar: a.Avatar,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	account, err := s.accounts.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, "invalid_registration", err)
		return
	case errors.Is(err, auth.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email_taken", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "registration_failed", err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountPayload(account))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	account, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrNoAccount), errors.Is(err, auth.ErrWrongPassword):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "login_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountPayload(account))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
