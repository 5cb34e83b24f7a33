package ledger

import (
	"context"
	"time"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// In-memory fakes. The DBTX argument is ignored; commands under test are
// handed a nil transaction.

type fakeSeasonRepo struct {
	seasons map[uuid.UUID]*domain.Season
}

func newFakeSeasonRepo() *fakeSeasonRepo {
	return &fakeSeasonRepo{seasons: make(map[uuid.UUID]*domain.Season)}
}

func (f *fakeSeasonRepo) add() *domain.Season {
	s := &domain.Season{ID: uuid.New(), Name: uuid.NewString(), StartDate: time.Now(), CreatedAt: time.Now()}
	f.seasons[s.ID] = s
	return s
}

func (f *fakeSeasonRepo) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Season, error) {
	return f.seasons[id], nil
}

func (f *fakeSeasonRepo) FindByName(_ context.Context, _ repository.DBTX, name string) (*domain.Season, error) {
	for _, s := range f.seasons {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSeasonRepo) List(_ context.Context, _ repository.DBTX) ([]domain.Season, error) {
	return nil, nil
}

func (f *fakeSeasonRepo) Create(_ context.Context, _ repository.DBTX, name string, startDate time.Time) (*domain.Season, error) {
	s := &domain.Season{ID: uuid.New(), Name: name, StartDate: startDate, CreatedAt: time.Now()}
	f.seasons[s.ID] = s
	return s, nil
}

func (f *fakeSeasonRepo) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, upd domain.SeasonUpdate) (*domain.Season, error) {
	return nil, nil
}

func (f *fakeSeasonRepo) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	delete(f.seasons, id)
	return nil
}

type fakePlayerRepo struct {
	players map[uuid.UUID]*domain.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[uuid.UUID]*domain.Player)}
}

func (f *fakePlayerRepo) add() *domain.Player {
	p := &domain.Player{ID: uuid.New(), Name: uuid.NewString(), CreatedAt: time.Now()}
	f.players[p.ID] = p
	return p
}

func (f *fakePlayerRepo) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Player, error) {
	return f.players[id], nil
}

func (f *fakePlayerRepo) FindByName(_ context.Context, _ repository.DBTX, name string) (*domain.Player, error) {
	for _, p := range f.players {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePlayerRepo) List(_ context.Context, _ repository.DBTX) ([]domain.Player, error) {
	return nil, nil
}

func (f *fakePlayerRepo) Create(_ context.Context, _ repository.DBTX, name string) (*domain.Player, error) {
	p := &domain.Player{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	f.players[p.ID] = p
	return p, nil
}

func (f *fakePlayerRepo) Rename(_ context.Context, _ repository.DBTX, id uuid.UUID, name string) (*domain.Player, error) {
	return nil, nil
}

func (f *fakePlayerRepo) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	delete(f.players, id)
	return nil
}

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*domain.SeasonPlayerAccount
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[uuid.UUID]*domain.SeasonPlayerAccount)}
}

func (f *fakeAccountRepo) add(seasonID, playerID uuid.UUID, alloc, minBuyIn string) *domain.SeasonPlayerAccount {
	a := &domain.SeasonPlayerAccount{
		ID:               uuid.New(),
		SeasonID:         seasonID,
		PlayerID:         playerID,
		AllocatedPotSize: decimal.RequireFromString(alloc),
		MinBuyIn:         decimal.RequireFromString(minBuyIn),
		CurrentPotSize:   decimal.RequireFromString(alloc),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.accounts[a.ID] = a
	return a
}

func (f *fakeAccountRepo) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) LockForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountRepo) FindBySeasonAndPlayer(_ context.Context, _ repository.DBTX, seasonID, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	for _, a := range f.accounts {
		if a.SeasonID == seasonID && a.PlayerID == playerID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindFirstBySeason(_ context.Context, _ repository.DBTX, seasonID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	for _, a := range f.accounts {
		if a.SeasonID == seasonID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindFirstByPlayer(_ context.Context, _ repository.DBTX, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	for _, a := range f.accounts {
		if a.PlayerID == playerID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) List(_ context.Context, _ repository.DBTX) ([]domain.SeasonPlayerAccount, error) {
	var out []domain.SeasonPlayerAccount
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, _ repository.DBTX, params domain.OpenAccountParams) (*domain.SeasonPlayerAccount, error) {
	a := &domain.SeasonPlayerAccount{
		ID:               uuid.New(),
		SeasonID:         params.SeasonID,
		PlayerID:         params.PlayerID,
		AllocatedPotSize: params.AllocatedPotSize,
		MinBuyIn:         params.MinBuyIn,
		CurrentPotSize:   params.AllocatedPotSize,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	f.accounts[a.ID] = a
	return a, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error) {
	a := f.accounts[id]
	if a == nil {
		return nil, nil
	}
	a.SeasonID = upd.SeasonID
	a.PlayerID = upd.PlayerID
	a.AllocatedPotSize = upd.AllocatedPotSize
	a.MinBuyIn = upd.MinBuyIn
	a.CurrentPotSize = upd.CurrentPotSize
	a.UpdatedAt = time.Now()
	return a, nil
}

func (f *fakeAccountRepo) SetCurrentPot(_ context.Context, _ repository.DBTX, id uuid.UUID, pot decimal.Decimal) (*domain.SeasonPlayerAccount, error) {
	a := f.accounts[id]
	if a == nil {
		return nil, nil
	}
	a.CurrentPotSize = pot
	a.UpdatedAt = time.Now()
	return a, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	delete(f.accounts, id)
	return nil
}

type fakeBuyInRepo struct {
	entries []domain.GameBuyIn
}

func (f *fakeBuyInRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordBuyInParams) (*domain.GameBuyIn, error) {
	b := domain.GameBuyIn{
		ID:             uuid.New(),
		GameID:         params.GameID,
		SeasonPlayerID: params.SeasonPlayerID,
		BuyInAmount:    params.Amount,
		CreatedAt:      time.Now(),
	}
	f.entries = append(f.entries, b)
	return &b, nil
}

func (f *fakeBuyInRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID && f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBuyInRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.GameBuyIn, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBuyInRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	for i := range f.entries {
		if f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBuyInRepo) SumByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, b := range f.entries {
		if b.SeasonPlayerID == accountID {
			sum = sum.Add(b.BuyInAmount)
		}
	}
	return sum, nil
}

type fakeResultRepo struct {
	entries []domain.GameResult
}

func (f *fakeResultRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordResultParams) (*domain.GameResult, error) {
	r := domain.GameResult{
		ID:             uuid.New(),
		GameID:         params.GameID,
		SeasonPlayerID: params.SeasonPlayerID,
		Winnings:       params.Winnings,
		CreatedAt:      time.Now(),
	}
	f.entries = append(f.entries, r)
	return &r, nil
}

func (f *fakeResultRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.GameResult, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID && f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResultRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.GameResult, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResultRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.GameResult, error) {
	for i := range f.entries {
		if f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeResultRepo) SumByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, r := range f.entries {
		if r.SeasonPlayerID == accountID {
			sum = sum.Add(r.Winnings)
		}
	}
	return sum, nil
}

type fakeParticipationRepo struct {
	entries []domain.PlayerParticipation
}

func (f *fakeParticipationRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordParticipationParams) (*domain.PlayerParticipation, error) {
	p := domain.PlayerParticipation{
		ID:             uuid.New(),
		GameID:         params.GameID,
		SeasonPlayerID: params.SeasonPlayerID,
		Participated:   params.Participated,
		DecidedAt:      time.Now(),
		CreatedAt:      time.Now(),
	}
	f.entries = append(f.entries, p)
	return &p, nil
}

func (f *fakeParticipationRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID && f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeParticipationRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.PlayerParticipation, error) {
	for i := range f.entries {
		if f.entries[i].GameID == gameID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeParticipationRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	for i := range f.entries {
		if f.entries[i].SeasonPlayerID == accountID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

type fakeOutboxRepo struct {
	drafts []domain.OutboxDraft
}

func (f *fakeOutboxRepo) Insert(_ context.Context, _ repository.DBTX, draft domain.OutboxDraft) error {
	f.drafts = append(f.drafts, draft)
	return nil
}

func (f *fakeOutboxRepo) FetchUnpublished(_ context.Context, _ repository.DBTX, limit int) ([]domain.OutboxDraft, error) {
	if limit > len(f.drafts) {
		limit = len(f.drafts)
	}
	return f.drafts[:limit], nil
}

func (f *fakeOutboxRepo) MarkPublished(_ context.Context, _ repository.DBTX, _ []uuid.UUID) error {
	return nil
}

type testEngine struct {
	engine         *Engine
	accounts       *fakeAccountRepo
	seasons        *fakeSeasonRepo
	players        *fakePlayerRepo
	buyIns         *fakeBuyInRepo
	results        *fakeResultRepo
	participations *fakeParticipationRepo
	outbox         *fakeOutboxRepo
}

func newTestEngine() *testEngine {
	accounts := newFakeAccountRepo()
	seasons := newFakeSeasonRepo()
	players := newFakePlayerRepo()
	buyIns := &fakeBuyInRepo{}
	results := &fakeResultRepo{}
	participations := &fakeParticipationRepo{}
	outbox := &fakeOutboxRepo{}
	return &testEngine{
		engine:         NewEngine(accounts, seasons, players, buyIns, results, participations, outbox),
		accounts:       accounts,
		seasons:        seasons,
		players:        players,
		buyIns:         buyIns,
		results:        results,
		participations: participations,
		outbox:         outbox,
	}
}

// addAccount seeds a season, a player and an open account linking them.
func (te *testEngine) addAccount(alloc, minBuyIn string) *domain.SeasonPlayerAccount {
	season := te.seasons.add()
	player := te.players.add()
	return te.accounts.add(season.ID, player.ID, alloc, minBuyIn)
}
