package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pongseed/models"
	"pongseed/sim"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// seederService implements the SeederService interface
type seederService struct {
	uowFactory   UnitOfWorkFactory
	rng          *rand.Rand
	seedPassword string
}

// NewSeederService creates a new seeder service
func NewSeederService(uowFactory UnitOfWorkFactory, rng *rand.Rand, seedPassword string) SeederService {
	return &seederService{
		uowFactory:   uowFactory,
		rng:          rng,
		seedPassword: seedPassword,
	}
}

// SeedUsers creates count users with sequential usernames user1..userN.
// Username collisions with earlier runs are logged and skipped; the
// rest of the batch still commits.
func (s *seederService) SeedUsers(ctx context.Context, count int) error {
	if count < 1 {
		return fmt.Errorf("user count must be at least 1")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	created := 0
	for i := 1; i <= count; i++ {
		username := fmt.Sprintf("user%d", i)

		hash, err := bcrypt.GenerateFromPassword([]byte(s.seedPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Username:   username,
			Email:      fmt.Sprintf("%s@gmail.com", username),
			Password:   string(hash),
			Provider:   "local",
			AvatarType: models.AvatarTypeDefault,
		}

		inserted, err := uow.UserRepository().Create(ctx, user)
		if err != nil {
			return err
		}
		if inserted == nil {
			log.Warnf("User %s already exists, skipping", username)
			continue
		}

		log.Infof("Created user: %s", username)
		created++
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	log.Infof("Created %d of %d users", created, count)
	return nil
}

// SeedFriends gives every user up to perUser new friends, walking
// candidates in ascending identifier order and skipping self and
// already-linked pairs. The run fails before any insert when the
// population cannot satisfy the quota for a single user.
func (s *seederService) SeedFriends(ctx context.Context, perUser int) error {
	if perUser < 1 {
		return fmt.Errorf("friend quota must be at least 1")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	if len(users) < perUser+1 {
		return fmt.Errorf("not enough users to give each %d friends: have %d, need at least %d", perUser, len(users), perUser+1)
	}

	for _, user := range users {
		added := 0
		for _, candidate := range users {
			if candidate.ID == user.ID {
				continue
			}

			exists, err := uow.FriendRepository().Exists(ctx, user.ID, candidate.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			friendship := &models.Friendship{UserID: user.ID, FriendID: candidate.ID}
			if err := uow.FriendRepository().Create(ctx, friendship); err != nil {
				return err
			}

			added++
			if added >= perUser {
				break
			}
		}

		if added < perUser {
			log.Warnf("User %d only gained %d of %d new friends", user.ID, added, perUser)
		} else {
			log.Infof("User %d now has %d new friends", user.ID, added)
		}
	}

	return uow.Commit()
}

// SeedGames simulates count games between randomly paired users with
// simple [0,10] scoring and updates both players' stats ledgers.
func (s *seederService) SeedGames(ctx context.Context, count int) error {
	if count < 1 {
		return fmt.Errorf("game count must be at least 1")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}
	defer uow.Rollback()

	users, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	if len(users) < 2 {
		return fmt.Errorf("need at least 2 users to simulate games, have %d", len(users))
	}

	for i := 0; i < count; i++ {
		player1, player2 := pickTwoPlayers(s.rng, users)
		score1, score2 := sim.SimpleScores(s.rng)

		game, delta1, delta2 := sim.BuildGame(s.rng, sim.GameParams{
			Player1ID: player1.ID,
			Player2ID: player2.ID,
			Score1:    score1,
			Score2:    score2,
			CreatedAt: time.Now(),
		})

		if err := recordGame(ctx, uow, game, delta1, delta2); err != nil {
			return err
		}

		log.Infof("Created game %d between user %d and user %d", game.ID, player1.ID, player2.ID)
	}

	return uow.Commit()
}
