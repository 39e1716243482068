package dicesession_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/paranormal-api/internal/errors"
	"github.com/KirkDiggler/paranormal-api/internal/pkg/clock"
	"github.com/KirkDiggler/paranormal-api/internal/redis"
	dicesession "github.com/KirkDiggler/paranormal-api/internal/repositories/dice_session"
	"github.com/KirkDiggler/paranormal-api/internal/testutils"
)

type steppedClock struct {
	now time.Time
}

func (c *steppedClock) Now() time.Time { return c.now }

type DiceSessionTestSuite struct {
	suite.Suite
	client redis.Client
	mr     *miniredis.Miniredis
	clock  *steppedClock
	repo   dicesession.Repository
	ctx    context.Context
}

func TestDiceSessionSuite(t *testing.T) {
	suite.Run(t, new(DiceSessionTestSuite))
}

func (s *DiceSessionTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.clock = &steppedClock{now: time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)}

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client:   s.client,
		Clock:    s.clock,
		MaxRolls: 3,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func roll(id string, total int) dicesession.DiceRoll {
	return dicesession.DiceRoll{
		RollID:   id,
		Kind:     dicesession.RollKindNotation,
		Notation: "1d20",
		Results:  []int{total},
		Total:    total,
	}
}

func (s *DiceSessionTestSuite) TestConfigValidation() {
	_, err := dicesession.NewRedisRepository(&dicesession.Config{Clock: clock.New()})
	s.True(errors.IsInvalidArgument(err))
	_, err = dicesession.NewRedisRepository(&dicesession.Config{Client: s.client, Clock: clock.New(), TTL: -time.Second})
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceSessionTestSuite) TestCreateGetDelete() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_001",
		Context:  "sheet",
		Rolls:    []dicesession.DiceRoll{roll("r1", 12)},
	})
	s.Require().NoError(err)
	s.True(s.mr.Exists("dice_session:char_001:sheet"))
	s.Equal(dicesession.DefaultTTL, s.mr.TTL("dice_session:char_001:sheet"))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_001", Context: "sheet"})
	s.Require().NoError(err)
	s.Equal([]int{12}, got.Session.Rolls[0].Results)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_001", Context: "sheet"})
	s.Require().NoError(err)
	s.Equal(1, out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_001", Context: "sheet"})
	s.True(errors.IsNotFound(err))
}

func (s *DiceSessionTestSuite) TestAppendCreatesAndTrims() {
	for i := 1; i <= 5; i++ {
		_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
			EntityID: "char_001",
			Context:  "sheet",
			Rolls:    []dicesession.DiceRoll{roll(fmt.Sprintf("r%d", i), i)},
		})
		s.Require().NoError(err)
	}

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_001", Context: "sheet"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 3)
	s.Equal("r3", got.Session.Rolls[0].RollID)
	s.Equal("r5", got.Session.Rolls[2].RollID)
}

func (s *DiceSessionTestSuite) TestAppendKeepsExpiry() {
	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "char_001", Context: "sheet", Rolls: []dicesession.DiceRoll{roll("r1", 1)},
	})
	s.Require().NoError(err)
	expires := out.Session.ExpiresAt

	s.clock.now = s.clock.now.Add(5 * time.Minute)
	out, err = s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "char_001", Context: "sheet", Rolls: []dicesession.DiceRoll{roll("r2", 2)},
	})
	s.Require().NoError(err)
	s.Equal(expires, out.Session.ExpiresAt)
	s.Equal(10*time.Minute, s.mr.TTL("dice_session:char_001:sheet"))
}

func (s *DiceSessionTestSuite) TestExpiredSessionStartsOver() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "char_001", Context: "sheet", Rolls: []dicesession.DiceRoll{roll("old", 1)},
	})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(dicesession.DefaultTTL)
	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_001", Context: "sheet"})
	s.True(errors.IsNotFound(err))

	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: "char_001", Context: "sheet", Rolls: []dicesession.DiceRoll{roll("new", 2)},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Session.Rolls, 1)
	s.Equal("new", out.Session.Rolls[0].RollID)
}

func (s *DiceSessionTestSuite) TestUpdateRejectsExpired() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{EntityID: "char_001", Context: "sheet", TTL: time.Minute})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(2 * time.Minute)
	err = s.repo.Update(s.ctx, created.Session)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *DiceSessionTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: "char_001", Context: "sheet"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Get(s.ctx, dicesession.GetInput{Context: "sheet"})
	s.True(errors.IsInvalidArgument(err))
	_, err = s.repo.Create(s.ctx, dicesession.CreateInput{EntityID: "char_001"})
	s.True(errors.IsInvalidArgument(err))
	s.True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
}
