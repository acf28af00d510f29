package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pongseed/models"
	"pongseed/sim"

	"github.com/anandvarma/namegen"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var avatarTypes = []models.AvatarType{
	models.AvatarTypeDefault,
	models.AvatarTypeUploaded,
	models.AvatarTypeGenerated,
}

var tournamentStatuses = []models.TournamentStatus{
	models.TournamentStatusPending,
	models.TournamentStatusActive,
	models.TournamentStatusFinished,
}

// tournamentSizes are the bracket sizes a generated tournament can
// have, capped at the available user population.
var tournamentSizes = []int{4, 8, 16}

// generatorService implements the GeneratorService interface
type generatorService struct {
	uowFactory   UnitOfWorkFactory
	rng          *rand.Rand
	seedPassword string
}

// NewGeneratorService creates a new dataset generator service
func NewGeneratorService(uowFactory UnitOfWorkFactory, rng *rand.Rand, seedPassword string) GeneratorService {
	return &generatorService{
		uowFactory:   uowFactory,
		rng:          rng,
		seedPassword: seedPassword,
	}
}

// Generate creates numUsers random users, a batch of simulated games
// between them and, when requested, one tournament with sampled
// participants. Everything runs in a single transaction.
func (s *generatorService) Generate(ctx context.Context, numUsers int, withTournament bool) error {
	if numUsers < 1 {
		return fmt.Errorf("number of users must be at least 1")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	users, err := s.generateUsers(ctx, uow, numUsers)
	if err != nil {
		return err
	}

	if err := s.generateGames(ctx, uow, users, withTournament); err != nil {
		return err
	}

	if withTournament {
		if err := s.generateTournament(ctx, uow, users); err != nil {
			return err
		}
	}

	return uow.Commit()
}

func (s *generatorService) generateUsers(ctx context.Context, uow UnitOfWork, numUsers int) ([]*models.User, error) {
	var users []*models.User

	// Adjective+animal usernames with a numeric postfix
	usernames := namegen.NewWithPostfixId([]namegen.DictType{namegen.Adjectives, namegen.Animals}, namegen.Numeric, 3)

	for i := 0; i < numUsers; i++ {
		username := usernames.Get()

		hash, err := bcrypt.GenerateFromPassword([]byte(s.seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}

		avatarType := avatarTypes[s.rng.Intn(len(avatarTypes))]
		var avatarFilename *string
		if avatarType != models.AvatarTypeDefault {
			filename := fmt.Sprintf("avatar_%s.jpg", uuid.NewString())
			avatarFilename = &filename
		}

		user := &models.User{
			Username:       username,
			Email:          fmt.Sprintf("%s%d@gmail.com", strings.ToLower(username), s.rng.Intn(999)+1),
			Password:       string(hash),
			Provider:       "local",
			AvatarType:     avatarType,
			AvatarFilename: avatarFilename,
		}

		inserted, err := uow.UserRepository().Create(ctx, user)
		if err != nil {
			return nil, err
		}
		if inserted == nil {
			log.Warnf("User %s already exists, skipping", username)
			continue
		}

		log.Infof("Created user: %s", username)
		users = append(users, user)
	}

	log.Infof("Inserted %d users", len(users))
	return users, nil
}

func (s *generatorService) generateGames(ctx context.Context, uow UnitOfWork, users []*models.User, isTournament bool) error {
	if len(users) < 2 {
		log.Warn("Need at least 2 users to generate games, skipping")
		return nil
	}

	// Variable batch size relative to the population
	low, high := len(users)/2, len(users)*2
	numGames := low + s.rng.Intn(high-low+1)

	for i := 0; i < numGames; i++ {
		player1, player2 := pickTwoPlayers(s.rng, users)
		score1, score2 := sim.MatchPointScores(s.rng)

		// Backdate within the last 30 days
		createdAt := time.Now().AddDate(0, 0, -s.rng.Intn(31))

		game, delta1, delta2 := sim.BuildGame(s.rng, sim.GameParams{
			Player1ID:    player1.ID,
			Player2ID:    player2.ID,
			Score1:       score1,
			Score2:       score2,
			IsTournament: isTournament,
			CreatedAt:    createdAt,
		})

		if err := recordGame(ctx, uow, game, delta1, delta2); err != nil {
			return err
		}

		log.Infof("Created game %d between user %d and user %d", game.ID, player1.ID, player2.ID)
	}

	log.Infof("Inserted %d games", numGames)
	return nil
}

func (s *generatorService) generateTournament(ctx context.Context, uow UnitOfWork, users []*models.User) error {
	if len(users) == 0 {
		return fmt.Errorf("need at least one user to create a tournament")
	}

	tournament := &models.Tournament{
		Name:      fmt.Sprintf("Championship %d", 2020+s.rng.Intn(5)),
		Status:    tournamentStatuses[s.rng.Intn(len(tournamentStatuses))],
		CreatedAt: time.Now().AddDate(0, 0, -(1 + s.rng.Intn(60))),
	}

	if err := uow.TournamentRepository().Create(ctx, tournament); err != nil {
		return err
	}

	numParticipants := min(len(users), tournamentSizes[s.rng.Intn(len(tournamentSizes))])

	// Sample without replacement; draw order doubles as the final
	// standing when the tournament is finished
	perm := s.rng.Perm(len(users))
	for i := 0; i < numParticipants; i++ {
		participant := &models.TournamentParticipant{
			TournamentID: tournament.ID,
			UserID:       users[perm[i]].ID,
		}
		if tournament.Status == models.TournamentStatusFinished {
			position := i + 1
			participant.FinalPosition = &position
		}

		if err := uow.TournamentRepository().AddParticipant(ctx, participant); err != nil {
			return err
		}
	}

	log.Infof("Created tournament %q (%s) with %d participants", tournament.Name, tournament.Status, numParticipants)
	return nil
}
