package handler

import (
	"net/http"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TournamentHandler exposes the natural-key command endpoints. Clients
// speak season names, player names and game numbers; ids never appear in
// these request bodies.
type TournamentHandler struct {
	svc *service.TournamentService
}

// NewTournamentHandler creates a TournamentHandler.
func NewTournamentHandler(svc *service.TournamentService) *TournamentHandler {
	return &TournamentHandler{svc: svc}
}

type createSeasonRequest struct {
	SeasonName string `json:"seasonName"`
}

// CreateSeason handles POST /tournament/seasons.
func (h *TournamentHandler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var req createSeasonRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	season, err := h.svc.CreateSeason(r.Context(), req.SeasonName)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, season)
}

type enrollPlayerRequest struct {
	SeasonName       string `json:"seasonName"`
	PlayerName       string `json:"playerName"`
	MinBuyIn         string `json:"minBuyIn"`
	AllocatedPotSize string `json:"allocatedPotSize"`
}

// EnrollPlayer handles POST /tournament/seasons/players.
func (h *TournamentHandler) EnrollPlayer(w http.ResponseWriter, r *http.Request) {
	var req enrollPlayerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	minBuyIn, err := domain.ParseMoney(req.MinBuyIn)
	if err != nil {
		RespondError(w, err)
		return
	}
	allocated, err := domain.ParseMoney(req.AllocatedPotSize)
	if err != nil {
		RespondError(w, err)
		return
	}

	account, err := h.svc.EnrollPlayer(r.Context(), req.SeasonName, req.PlayerName, minBuyIn, allocated)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, account)
}

type createGameRequest struct {
	SeasonName string `json:"seasonName"`
	GameNumber int    `json:"gameNumber"`
}

// CreateGame handles POST /tournament/games.
func (h *TournamentHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	game, err := h.svc.CreateGame(r.Context(), req.SeasonName, req.GameNumber)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, game)
}

type recordBuyInRequest struct {
	GameNumber int    `json:"gameNumber"`
	PlayerName string `json:"playerName"`
	Amount     string `json:"amount"`
}

// RecordBuyIn handles POST /tournament/buy-ins.
func (h *TournamentHandler) RecordBuyIn(w http.ResponseWriter, r *http.Request) {
	var req recordBuyInRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	amount, err := domain.ParseMoney(req.Amount)
	if err != nil {
		RespondError(w, err)
		return
	}

	buyIn, err := h.svc.RecordBuyIn(r.Context(), req.GameNumber, req.PlayerName, amount)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, buyIn)
}

type recordResultRequest struct {
	GameNumber int    `json:"gameNumber"`
	PlayerName string `json:"playerName"`
	Winnings   string `json:"winnings"`
}

// RecordResult handles POST /tournament/results.
func (h *TournamentHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	var req recordResultRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	winnings, err := domain.ParseMoney(req.Winnings)
	if err != nil {
		RespondError(w, err)
		return
	}

	result, err := h.svc.RecordResult(r.Context(), req.GameNumber, req.PlayerName, winnings)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, result)
}

type recordParticipationRequest struct {
	GameNumber   int    `json:"gameNumber"`
	PlayerName   string `json:"playerName"`
	Participated bool   `json:"participated"`
}

// RecordParticipation handles POST /tournament/participations.
func (h *TournamentHandler) RecordParticipation(w http.ResponseWriter, r *http.Request) {
	var req recordParticipationRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	participation, err := h.svc.RecordParticipation(r.Context(), req.GameNumber, req.PlayerName, req.Participated)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, participation)
}

// FindAccount handles GET /tournament/accounts?seasonName=...&playerName=...
func (h *TournamentHandler) FindAccount(w http.ResponseWriter, r *http.Request) {
	seasonName := r.URL.Query().Get("seasonName")
	playerName := r.URL.Query().Get("playerName")

	account, err := h.svc.FindAccount(r.Context(), seasonName, playerName)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, account)
}

// ReconcileAccount handles POST /accounts/{id}/reconcile.
func (h *TournamentHandler) ReconcileAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	account, err := h.svc.ReconcileAccount(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, account)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrValidation("invalid id: " + raw)
	}
	return id, nil
}
