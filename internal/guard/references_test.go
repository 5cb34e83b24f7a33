package guard

import (
	"context"
	"testing"
	"time"

	"github.com/felttable/tracker/internal/domain"
	"github.com/felttable/tracker/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes hold at most one row per dependent table, matched on the foreign key
// the guard queries by.

type fakeGameRepo struct {
	game *domain.Game
}

func (f *fakeGameRepo) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) FindByNumber(_ context.Context, _ repository.DBTX, gameNumber int) (*domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) FindFirstBySeason(_ context.Context, _ repository.DBTX, seasonID uuid.UUID) (*domain.Game, error) {
	if f.game != nil && f.game.SeasonID == seasonID {
		return f.game, nil
	}
	return nil, nil
}

func (f *fakeGameRepo) List(_ context.Context, _ repository.DBTX) ([]domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Create(_ context.Context, _ repository.DBTX, seasonID uuid.UUID, gameNumber int) (*domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, upd domain.GameUpdate) (*domain.Game, error) {
	return nil, nil
}

func (f *fakeGameRepo) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	return nil
}

type fakeAccountRepo struct {
	account *domain.SeasonPlayerAccount
}

func (f *fakeAccountRepo) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) LockForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) FindBySeasonAndPlayer(_ context.Context, _ repository.DBTX, seasonID, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) FindFirstBySeason(_ context.Context, _ repository.DBTX, seasonID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	if f.account != nil && f.account.SeasonID == seasonID {
		return f.account, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindFirstByPlayer(_ context.Context, _ repository.DBTX, playerID uuid.UUID) (*domain.SeasonPlayerAccount, error) {
	if f.account != nil && f.account.PlayerID == playerID {
		return f.account, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) List(_ context.Context, _ repository.DBTX) ([]domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) Create(_ context.Context, _ repository.DBTX, params domain.OpenAccountParams) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, _ repository.DBTX, id uuid.UUID, upd domain.AccountUpdate) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) SetCurrentPot(_ context.Context, _ repository.DBTX, id uuid.UUID, pot decimal.Decimal) (*domain.SeasonPlayerAccount, error) {
	return nil, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, _ repository.DBTX, id uuid.UUID) error {
	return nil
}

type fakeBuyInRepo struct {
	buyIn *domain.GameBuyIn
}

func (f *fakeBuyInRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordBuyInParams) (*domain.GameBuyIn, error) {
	return nil, nil
}

func (f *fakeBuyInRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	return nil, nil
}

func (f *fakeBuyInRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.GameBuyIn, error) {
	if f.buyIn != nil && f.buyIn.GameID == gameID {
		return f.buyIn, nil
	}
	return nil, nil
}

func (f *fakeBuyInRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.GameBuyIn, error) {
	if f.buyIn != nil && f.buyIn.SeasonPlayerID == accountID {
		return f.buyIn, nil
	}
	return nil, nil
}

func (f *fakeBuyInRepo) SumByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeResultRepo struct {
	result *domain.GameResult
}

func (f *fakeResultRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordResultParams) (*domain.GameResult, error) {
	return nil, nil
}

func (f *fakeResultRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.GameResult, error) {
	return nil, nil
}

func (f *fakeResultRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.GameResult, error) {
	if f.result != nil && f.result.GameID == gameID {
		return f.result, nil
	}
	return nil, nil
}

func (f *fakeResultRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.GameResult, error) {
	if f.result != nil && f.result.SeasonPlayerID == accountID {
		return f.result, nil
	}
	return nil, nil
}

func (f *fakeResultRepo) SumByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeParticipationRepo struct {
	participation *domain.PlayerParticipation
}

func (f *fakeParticipationRepo) Insert(_ context.Context, _ repository.DBTX, params domain.RecordParticipationParams) (*domain.PlayerParticipation, error) {
	return nil, nil
}

func (f *fakeParticipationRepo) FindByGameAndAccount(_ context.Context, _ repository.DBTX, gameID, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	return nil, nil
}

func (f *fakeParticipationRepo) FindFirstByGame(_ context.Context, _ repository.DBTX, gameID uuid.UUID) (*domain.PlayerParticipation, error) {
	if f.participation != nil && f.participation.GameID == gameID {
		return f.participation, nil
	}
	return nil, nil
}

func (f *fakeParticipationRepo) FindFirstByAccount(_ context.Context, _ repository.DBTX, accountID uuid.UUID) (*domain.PlayerParticipation, error) {
	if f.participation != nil && f.participation.SeasonPlayerID == accountID {
		return f.participation, nil
	}
	return nil, nil
}

type fixtures struct {
	games          *fakeGameRepo
	accounts       *fakeAccountRepo
	buyIns         *fakeBuyInRepo
	results        *fakeResultRepo
	participations *fakeParticipationRepo
}

func newTestGuard() (*Guard, *fixtures) {
	fx := &fixtures{
		games:          &fakeGameRepo{},
		accounts:       &fakeAccountRepo{},
		buyIns:         &fakeBuyInRepo{},
		results:        &fakeResultRepo{},
		participations: &fakeParticipationRepo{},
	}
	return New(fx.games, fx.accounts, fx.buyIns, fx.results, fx.participations), fx
}

func TestCheckReferencesSeason(t *testing.T) {
	ctx := context.Background()
	seasonID := uuid.New()

	t.Run("clean season passes", func(t *testing.T) {
		g, _ := newTestGuard()
		warning, err := g.CheckReferences(ctx, nil, domain.KindSeason, seasonID)
		require.NoError(t, err)
		assert.Nil(t, warning)
	})

	t.Run("account outranks game", func(t *testing.T) {
		g, fx := newTestGuard()
		fx.accounts.account = &domain.SeasonPlayerAccount{ID: uuid.New(), SeasonID: seasonID}
		fx.games.game = &domain.Game{ID: uuid.New(), SeasonID: seasonID}

		warning, err := g.CheckReferences(ctx, nil, domain.KindSeason, seasonID)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, domain.WarnSeasonAccount, warning.Key)
		assert.Equal(t, fx.accounts.account.ID, warning.ReferencedBy)
	})

	t.Run("game alone blocks", func(t *testing.T) {
		g, fx := newTestGuard()
		fx.games.game = &domain.Game{ID: uuid.New(), SeasonID: seasonID}

		warning, err := g.CheckReferences(ctx, nil, domain.KindSeason, seasonID)
		require.NoError(t, err)
		require.NotNil(t, warning)
		assert.Equal(t, domain.WarnSeasonGame, warning.Key)
		assert.Equal(t, fx.games.game.ID, warning.ReferencedBy)
	})
}

func TestCheckReferencesPlayer(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	g, fx := newTestGuard()
	warning, err := g.CheckReferences(ctx, nil, domain.KindPlayer, playerID)
	require.NoError(t, err)
	assert.Nil(t, warning)

	fx.accounts.account = &domain.SeasonPlayerAccount{ID: uuid.New(), PlayerID: playerID}
	warning, err = g.CheckReferences(ctx, nil, domain.KindPlayer, playerID)
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, domain.WarnPlayerAccount, warning.Key)
	assert.Equal(t, fx.accounts.account.ID, warning.ReferencedBy)
}

func TestCheckReferencesGame(t *testing.T) {
	ctx := context.Background()
	gameID := uuid.New()

	buyIn := &domain.GameBuyIn{ID: uuid.New(), GameID: gameID, CreatedAt: time.Now()}
	result := &domain.GameResult{ID: uuid.New(), GameID: gameID, CreatedAt: time.Now()}
	participation := &domain.PlayerParticipation{ID: uuid.New(), GameID: gameID, CreatedAt: time.Now()}

	tests := []struct {
		name    string
		seed    func(fx *fixtures)
		wantKey string
		wantID  uuid.UUID
	}{
		{
			name: "buy-in outranks result and participation",
			seed: func(fx *fixtures) {
				fx.buyIns.buyIn = buyIn
				fx.results.result = result
				fx.participations.participation = participation
			},
			wantKey: domain.WarnGameBuyIn,
			wantID:  buyIn.ID,
		},
		{
			name: "result outranks participation",
			seed: func(fx *fixtures) {
				fx.results.result = result
				fx.participations.participation = participation
			},
			wantKey: domain.WarnGameResult,
			wantID:  result.ID,
		},
		{
			name: "participation alone blocks",
			seed: func(fx *fixtures) {
				fx.participations.participation = participation
			},
			wantKey: domain.WarnGameParticipation,
			wantID:  participation.ID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, fx := newTestGuard()
			tt.seed(fx)

			warning, err := g.CheckReferences(ctx, nil, domain.KindGame, gameID)
			require.NoError(t, err)
			require.NotNil(t, warning)
			assert.Equal(t, tt.wantKey, warning.Key)
			assert.Equal(t, tt.wantID, warning.ReferencedBy)
		})
	}

	t.Run("clean game passes", func(t *testing.T) {
		g, _ := newTestGuard()
		warning, err := g.CheckReferences(ctx, nil, domain.KindGame, gameID)
		require.NoError(t, err)
		assert.Nil(t, warning)
	})
}

func TestCheckReferencesAccount(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	g, fx := newTestGuard()
	fx.buyIns.buyIn = &domain.GameBuyIn{ID: uuid.New(), SeasonPlayerID: accountID}
	fx.results.result = &domain.GameResult{ID: uuid.New(), SeasonPlayerID: accountID}

	warning, err := g.CheckReferences(ctx, nil, domain.KindAccount, accountID)
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, domain.WarnAccountBuyIn, warning.Key)

	fx.buyIns.buyIn = nil
	warning, err = g.CheckReferences(ctx, nil, domain.KindAccount, accountID)
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, domain.WarnAccountResult, warning.Key)

	fx.results.result = nil
	fx.participations.participation = &domain.PlayerParticipation{ID: uuid.New(), SeasonPlayerID: accountID}
	warning, err = g.CheckReferences(ctx, nil, domain.KindAccount, accountID)
	require.NoError(t, err)
	require.NotNil(t, warning)
	assert.Equal(t, domain.WarnAccountParticipation, warning.Key)
}

func TestCheckReferencesUnknownKind(t *testing.T) {
	g, _ := newTestGuard()
	_, err := g.CheckReferences(context.Background(), nil, domain.EntityKind("table"), uuid.New())
	assert.Error(t, err)
}
