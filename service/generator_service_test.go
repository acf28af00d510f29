package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"pongseed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGeneratorFixture() *seederFixture {
	f := &seederFixture{
		users:       new(MockUserRepository),
		friends:     new(MockFriendRepository),
		games:       new(MockGameRepository),
		stats:       new(MockStatsRepository),
		tournaments: new(MockTournamentRepository),
		uow:         new(MockUnitOfWork),
	}
	f.uow.SetRepositories(f.users, f.friends, f.games, f.stats, f.tournaments)
	return f
}

func newGenerator(f *seederFixture, seed int64) *generatorService {
	factory := new(MockUnitOfWorkFactory)
	factory.On("Create").Return(f.uow)

	return &generatorService{
		uowFactory:   factory,
		rng:          rand.New(rand.NewSource(seed)),
		seedPassword: "Hola1234",
	}
}

func TestGeneratorService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive user count", func(t *testing.T) {
		f := newGeneratorFixture()
		s := newGenerator(f, 1)

		err := s.Generate(ctx, 0, false)
		require.Error(t, err)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("users games and tournament share one transaction", func(t *testing.T) {
		f := newGeneratorFixture()
		s := newGenerator(f, 2)

		f.uow.On("Begin", mock.Anything).Return(nil)
		f.uow.On("Commit").Return(nil)
		f.uow.On("Rollback").Return(nil).Maybe()

		nextID := int64(0)
		f.users.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*models.User).ID = nextID
		}).Return(&models.User{}, nil)

		f.games.On("Create", ctx, mock.AnythingOfType("*models.Game")).Run(func(args mock.Arguments) {
			game := args.Get(1).(*models.Game)
			assert.True(t, game.IsTournament)
			assert.NotEqual(t, game.Player1ID, game.Player2ID)
		}).Return(nil)
		f.stats.On("Ensure", ctx, mock.Anything).Return(nil)
		f.stats.On("ApplyDelta", ctx, mock.Anything, mock.Anything).Return(nil)

		f.tournaments.On("Create", ctx, mock.AnythingOfType("*models.Tournament")).Return(nil)
		f.tournaments.On("AddParticipant", ctx, mock.AnythingOfType("*models.TournamentParticipant")).Return(nil)

		err := s.Generate(ctx, 6, true)
		require.NoError(t, err)

		f.users.AssertNumberOfCalls(t, "Create", 6)
		f.tournaments.AssertNumberOfCalls(t, "Create", 1)
		f.uow.AssertNumberOfCalls(t, "Commit", 1)
	})

	t.Run("without tournament no bracket is created", func(t *testing.T) {
		f := newGeneratorFixture()
		s := newGenerator(f, 3)

		f.uow.On("Begin", mock.Anything).Return(nil)
		f.uow.On("Commit").Return(nil)
		f.uow.On("Rollback").Return(nil).Maybe()

		nextID := int64(0)
		f.users.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*models.User).ID = nextID
		}).Return(&models.User{}, nil)
		f.games.On("Create", ctx, mock.AnythingOfType("*models.Game")).Run(func(args mock.Arguments) {
			assert.False(t, args.Get(1).(*models.Game).IsTournament)
		}).Return(nil)
		f.stats.On("Ensure", ctx, mock.Anything).Return(nil)
		f.stats.On("ApplyDelta", ctx, mock.Anything, mock.Anything).Return(nil)

		err := s.Generate(ctx, 4, false)
		require.NoError(t, err)

		f.tournaments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("single user skips games", func(t *testing.T) {
		f := newGeneratorFixture()
		s := newGenerator(f, 4)

		f.uow.On("Begin", mock.Anything).Return(nil)
		f.uow.On("Commit").Return(nil)
		f.uow.On("Rollback").Return(nil).Maybe()

		f.users.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(&models.User{}, nil)

		err := s.Generate(ctx, 1, false)
		require.NoError(t, err)

		f.games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGeneratorService_GenerateUsers(t *testing.T) {
	ctx := context.Background()

	f := newGeneratorFixture()
	s := newGenerator(f, 5)

	var created []*models.User
	f.users.On("Create", ctx, mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		created = append(created, args.Get(1).(*models.User))
	}).Return(&models.User{}, nil)

	users, err := s.generateUsers(ctx, f.uow, 5)
	require.NoError(t, err)
	require.Len(t, users, 5)
	require.Len(t, created, 5)

	for _, user := range created {
		assert.NotEmpty(t, user.Username)
		assert.Contains(t, user.Email, "@gmail.com")
		assert.NotEqual(t, "Hola1234", user.Password)
		assert.Equal(t, "local", user.Provider)

		if user.AvatarType == models.AvatarTypeDefault {
			assert.Nil(t, user.AvatarFilename)
		} else {
			require.NotNil(t, user.AvatarFilename)
			assert.Contains(t, *user.AvatarFilename, "avatar_")
		}
	}
}

func TestGeneratorService_GenerateTournament(t *testing.T) {
	ctx := context.Background()

	users := make([]*models.User, 10)
	for i := range users {
		users[i] = &models.User{ID: int64(i + 1)}
	}

	// Different seeds cover different statuses and bracket sizes
	for seed := int64(0); seed < 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			f := newGeneratorFixture()
			s := newGenerator(f, seed)

			var tournament *models.Tournament
			f.tournaments.On("Create", ctx, mock.AnythingOfType("*models.Tournament")).Run(func(args mock.Arguments) {
				tournament = args.Get(1).(*models.Tournament)
				tournament.ID = 99
			}).Return(nil)

			var participants []*models.TournamentParticipant
			f.tournaments.On("AddParticipant", ctx, mock.AnythingOfType("*models.TournamentParticipant")).Run(func(args mock.Arguments) {
				participants = append(participants, args.Get(1).(*models.TournamentParticipant))
			}).Return(nil)

			err := s.generateTournament(ctx, f.uow, users)
			require.NoError(t, err)
			require.NotNil(t, tournament)

			assert.Contains(t, []models.TournamentStatus{
				models.TournamentStatusPending,
				models.TournamentStatusActive,
				models.TournamentStatusFinished,
			}, tournament.Status)
			assert.Regexp(t, `^Championship 202[0-4]$`, tournament.Name)
			assert.True(t, tournament.CreatedAt.Before(time.Now().AddDate(0, 0, -1).Add(time.Minute)), "tournament must be backdated at least a day")

			// Bracket sizes are 4, 8 or 16 capped at the population
			assert.Contains(t, []int{4, 8, 10}, len(participants))

			seen := make(map[int64]bool)
			for i, p := range participants {
				assert.Equal(t, int64(99), p.TournamentID)
				assert.False(t, seen[p.UserID], "user %d sampled twice", p.UserID)
				seen[p.UserID] = true

				if tournament.Status == models.TournamentStatusFinished {
					require.NotNil(t, p.FinalPosition)
					assert.Equal(t, i+1, *p.FinalPosition)
				} else {
					assert.Nil(t, p.FinalPosition)
				}
			}
		})
	}
}

func TestGeneratorService_GenerateTournament_NoUsers(t *testing.T) {
	f := newGeneratorFixture()
	s := newGenerator(f, 6)

	err := s.generateTournament(context.Background(), f.uow, nil)
	require.Error(t, err)
	f.tournaments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
