package character_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranormal-api/internal/entities/paranormal"
	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/repositories/character"
	"github.com/KirkDiggler/paranormal-api/internal/testutils"
)

var testNow = time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo character.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := character.NewRedis(&character.RedisConfig{
		Client:     client,
		Clock:      clock.Fixed{T: testNow},
		MaxRetries: 50,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func newCharacter(id, playerID, name string) *paranormal.Character {
	return &paranormal.Character{
		ID:         id,
		PlayerID:   playerID,
		Name:       name,
		Archetype:  paranormal.Combatant,
		Rank:       paranormal.RankRecruit,
		NEX:        5,
		Attributes: paranormal.NewAttributeSet(1, 4, 1, 2, 3),
		Skills: map[string]paranormal.TrainingLevel{
			"Luta":     paranormal.Numeric(1),
			"Pontaria": paranormal.Legacy(paranormal.Trained),
		},
		Health:   paranormal.Full(23),
		Sanity:   paranormal.Full(12),
		Effort:   paranormal.Full(4),
		Defense:  14,
		Movement: 13,
		Capacity: 10,
		Inventory: []paranormal.InventoryItem{
			{Name: "Faca", SpaceCost: 1, Quantity: 1, Weapon: &paranormal.WeaponStats{Damage: "1d4", Threat: 19}},
		},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	char := newCharacter("char_001", "player_001", "Arthur Cervero")

	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)
	s.True(s.mr.Exists("character:char_001"))
	s.True(s.mr.Exists("character:all"))

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal(char, got.Character)

	updated := got.Character.Clone()
	updated.Name = "Arthur"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: updated})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal("Arthur", got.Character.Name)

	_, err = s.repo.Delete(s.ctx, character.DeleteInput{ID: "char_001"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("character:char_001"))

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	char := newCharacter("char_001", "player_001", "Arthur")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Mutate(s.ctx, character.MutateInput{ID: "char_001"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListAndListByPlayer() {
	for _, c := range []*paranormal.Character{
		newCharacter("char_001", "player_001", "Arthur"),
		newCharacter("char_002", "player_001", "Liz"),
		newCharacter("char_003", "player_002", "Dante"),
	} {
		_, err := s.repo.Create(s.ctx, character.CreateInput{Character: c})
		s.Require().NoError(err)
	}

	all, err := s.repo.List(s.ctx, character.ListInput{})
	s.Require().NoError(err)
	s.Len(all.Characters, 3)

	mine, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_001"})
	s.Require().NoError(err)
	s.Len(mine.Characters, 2)
	for _, c := range mine.Characters {
		s.Equal("player_001", c.PlayerID)
	}
}

func (s *RedisRepositoryTestSuite) TestUpdateMovesPlayerIndex() {
	char := newCharacter("char_001", "player_001", "Arthur")
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	moved := char.Clone()
	moved.PlayerID = "player_002"
	_, err = s.repo.Update(s.ctx, character.UpdateInput{Character: moved})
	s.Require().NoError(err)

	old, _ := s.mr.SMembers("character:player:player_001")
	s.Empty(old)
	current, _ := s.mr.SMembers("character:player:player_002")
	s.Equal([]string{"char_001"}, current)
}

func (s *RedisRepositoryTestSuite) TestIndexCleanup() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: newCharacter("char_001", "player_001", "Arthur")})
	s.Require().NoError(err)
	s.mr.Del("character:char_001")

	out, err := s.repo.ListByPlayerID(s.ctx, character.ListByPlayerIDInput{PlayerID: "player_001"})
	s.Require().NoError(err)
	s.Empty(out.Characters)

	members, _ := s.mr.SMembers("character:player:player_001")
	s.Empty(members)
}

func (s *RedisRepositoryTestSuite) TestMutate() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: newCharacter("char_001", "player_001", "Arthur")})
	s.Require().NoError(err)

	out, err := s.repo.Mutate(s.ctx, character.MutateInput{
		ID: "char_001",
		Mutate: func(c *paranormal.Character) error {
			c.Health = c.Health.Adjust(-5)
			return nil
		},
	})
	s.Require().NoError(err)
	s.Equal(18, out.Character.Health.Current)
	s.Equal(testNow, out.Character.UpdatedAt)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal(18, got.Character.Health.Current)
}

func (s *RedisRepositoryTestSuite) TestMutateErrorWritesNothing() {
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: newCharacter("char_001", "player_001", "Arthur")})
	s.Require().NoError(err)
	before, err := s.mr.Get("character:char_001")
	s.Require().NoError(err)

	_, err = s.repo.Mutate(s.ctx, character.MutateInput{
		ID: "char_001",
		Mutate: func(c *paranormal.Character) error {
			c.Name = "changed"
			return errors.CapacityExceeded(10, 11)
		},
	})
	s.True(errors.IsCapacityExceeded(err))

	after, err := s.mr.Get("character:char_001")
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *RedisRepositoryTestSuite) TestMutateMissing() {
	_, err := s.repo.Mutate(s.ctx, character.MutateInput{
		ID:     "ghost",
		Mutate: func(*paranormal.Character) error { return nil },
	})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestConcurrentMutationsAllApply() {
	char := newCharacter("char_001", "player_001", "Arthur")
	char.Effort = paranormal.Pool{Current: 0, Max: 100}
	_, err := s.repo.Create(s.ctx, character.CreateInput{Character: char})
	s.Require().NoError(err)

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.Mutate(s.ctx, character.MutateInput{
				ID: "char_001",
				Mutate: func(c *paranormal.Character) error {
					c.Effort = c.Effort.Adjust(1)
					return nil
				},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "char_001"})
	s.Require().NoError(err)
	s.Equal(writers, got.Character.Effort.Current)
}

func (s *RedisRepositoryTestSuite) TestMutateStoresLegacyRecordCanonically() {
	s.Require().NoError(s.mr.Set("character:42", legacyRecord))
	s.mr.SAdd("character:all", "42")

	_, err := s.repo.Mutate(s.ctx, character.MutateInput{
		ID: "42",
		Mutate: func(c *paranormal.Character) error {
			c.Sanity = c.Sanity.Adjust(-2)
			return nil
		},
	})
	s.Require().NoError(err)

	raw, err := s.mr.Get("character:42")
	s.Require().NoError(err)
	s.Contains(raw, `"attributes"`)
	s.NotContains(raw, `"atributos"`)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "42"})
	s.Require().NoError(err)
	s.Equal(10, got.Character.Sanity.Current)
	s.Equal(paranormal.Legacy(paranormal.Veteran), got.Character.Skills["Ocultismo"])

	players, _ := s.mr.SMembers("character:player:Marina")
	s.Equal([]string{"42"}, players)
}
