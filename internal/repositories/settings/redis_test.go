package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestMissingDocument() {
	var th tier.Thresholds
	out, err := s.repo.GetDocument(s.ctx, &GetDocumentInput{Name: DocTiers, Target: &th})
	s.Require().NoError(err)
	s.False(out.Found)
	s.Equal(tier.Thresholds{}, th)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	want := models.Retention{PerTier: map[tier.Tier]int{tier.Gold: 30}}
	s.Require().NoError(s.repo.SaveDocument(s.ctx, &SaveDocumentInput{Name: DocRetention, Value: want}))

	var got models.Retention
	out, err := s.repo.GetDocument(s.ctx, &GetDocumentInput{Name: DocRetention, Target: &got})
	s.Require().NoError(err)
	s.True(out.Found)
	s.Equal(want, got)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.SaveDocument(s.ctx, &SaveDocumentInput{Name: DocCurrency, Value: "gems"}))
	s.Require().NoError(s.repo.DeleteDocument(s.ctx, &DeleteDocumentInput{Name: DocCurrency}))

	var name string
	out, err := s.repo.GetDocument(s.ctx, &GetDocumentInput{Name: DocCurrency, Target: &name})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RedisRepositoryTestSuite) TestStoreDownIsUnavailable() {
	s.mr.Close()

	var name string
	_, err := s.repo.GetDocument(s.ctx, &GetDocumentInput{Name: DocCurrency, Target: &name})
	s.True(errors.Is(err, models.ErrExternalUnavailable))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.GetDocument(s.ctx, &GetDocumentInput{Name: DocTiers})
	s.True(errors.Is(err, models.ErrInvalidInput))

	err = s.repo.SaveDocument(s.ctx, &SaveDocumentInput{})
	s.True(errors.Is(err, models.ErrInvalidInput))
}
