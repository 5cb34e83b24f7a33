package handler

import (
	"net/http"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/service"
	"github.com/google/uuid"
)

// DirectoryHandler exposes the id-addressed CRUD surface: list, get,
// full-replace update and guarded delete for each entity kind.
type DirectoryHandler struct {
	svc *service.TournamentService
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(svc *service.TournamentService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

func (h *DirectoryHandler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.svc.ListSeasons(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, seasons)
}

func (h *DirectoryHandler) GetSeason(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	season, err := h.svc.GetSeason(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, season)
}

func (h *DirectoryHandler) UpdateSeason(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	var upd domain.SeasonUpdate
	if err := DecodeJSON(r, &upd); err != nil {
		RespondError(w, err)
		return
	}
	season, err := h.svc.UpdateSeason(r.Context(), id, upd)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, season)
}

func (h *DirectoryHandler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.svc.DeleteSeason(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}

func (h *DirectoryHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.svc.ListPlayers(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, players)
}

func (h *DirectoryHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	player, err := h.svc.GetPlayer(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, player)
}

type renamePlayerRequest struct {
	Name string `json:"name"`
}

func (h *DirectoryHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	var req renamePlayerRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}
	player, err := h.svc.RenamePlayer(r.Context(), id, req.Name)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, player)
}

func (h *DirectoryHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.svc.DeletePlayer(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}

func (h *DirectoryHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.svc.ListGames(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, games)
}

func (h *DirectoryHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	game, err := h.svc.GetGame(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, game)
}

func (h *DirectoryHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	var upd domain.GameUpdate
	if err := DecodeJSON(r, &upd); err != nil {
		RespondError(w, err)
		return
	}
	game, err := h.svc.UpdateGame(r.Context(), id, upd)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, game)
}

func (h *DirectoryHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.svc.DeleteGame(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}

func (h *DirectoryHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.ListAccounts(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, accounts)
}

func (h *DirectoryHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	account, err := h.svc.GetAccount(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, account)
}

type updateAccountRequest struct {
	SeasonID         string `json:"season_id"`
	PlayerID         string `json:"player_id"`
	AllocatedPotSize string `json:"allocated_pot_size"`
	MinBuyIn         string `json:"min_buy_in"`
	CurrentPotSize   string `json:"current_pot_size"`
}

func (h *DirectoryHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	var req updateAccountRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondError(w, err)
		return
	}

	upd, err := req.toUpdate()
	if err != nil {
		RespondError(w, err)
		return
	}

	account, err := h.svc.UpdateAccount(r.Context(), id, upd)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, account)
}

func (req updateAccountRequest) toUpdate() (domain.AccountUpdate, error) {
	var upd domain.AccountUpdate
	var err error

	if upd.SeasonID, err = parseUUIDField(req.SeasonID, "season_id"); err != nil {
		return upd, err
	}
	if upd.PlayerID, err = parseUUIDField(req.PlayerID, "player_id"); err != nil {
		return upd, err
	}
	if upd.AllocatedPotSize, err = domain.ParseMoney(req.AllocatedPotSize); err != nil {
		return upd, err
	}
	if upd.MinBuyIn, err = domain.ParseMoney(req.MinBuyIn); err != nil {
		return upd, err
	}
	if upd.CurrentPotSize, err = domain.ParseMoney(req.CurrentPotSize); err != nil {
		return upd, err
	}
	return upd, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrValidation("invalid " + field + ": " + raw)
	}
	return id, nil
}

func (h *DirectoryHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}
	if err := h.svc.DeleteAccount(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
