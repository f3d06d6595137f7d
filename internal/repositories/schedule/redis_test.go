package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
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
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) job(user, role string, in time.Duration) *models.RoleExpiration {
	return &models.RoleExpiration{UserID: user, RoleID: role, FireAt: s.testNow.Add(in)}
}

func (s *RedisRepositoryTestSuite) TestListOrdersByFireTime() {
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u1", "r1", 2*time.Hour)}))
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u2", "r1", time.Hour)}))

	out, err := s.repo.ListJobs(s.ctx, &ListJobsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Jobs, 2)
	s.Equal("u2", out.Jobs[0].UserID)
	s.Equal("u1", out.Jobs[1].UserID)
	s.True(out.Jobs[0].FireAt.Equal(s.testNow.Add(time.Hour)))
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesSameKey() {
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u1", "r1", time.Hour)}))
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u1", "r1", 3*time.Hour)}))

	out, err := s.repo.ListJobs(s.ctx, &ListJobsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Jobs, 1)
	s.True(out.Jobs[0].FireAt.Equal(s.testNow.Add(3 * time.Hour)))
}

func (s *RedisRepositoryTestSuite) TestListDueBefore() {
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u1", "r1", -time.Minute)}))
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u2", "r2", time.Minute)}))

	out, err := s.repo.ListJobs(s.ctx, &ListJobsInput{DueBefore: s.testNow})
	s.Require().NoError(err)
	s.Require().Len(out.Jobs, 1)
	s.Equal("u1", out.Jobs[0].UserID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	s.Require().NoError(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: s.job("u1", "r1", time.Hour)}))
	s.Require().NoError(s.repo.DeleteJob(s.ctx, &DeleteJobInput{UserID: "u1", RoleID: "r1"}))

	out, err := s.repo.ListJobs(s.ctx, &ListJobsInput{})
	s.Require().NoError(err)
	s.Empty(out.Jobs)
}

func (s *RedisRepositoryTestSuite) TestSaveValidates() {
	s.Error(s.repo.SaveJob(s.ctx, &SaveJobInput{}))
	s.Error(s.repo.SaveJob(s.ctx, &SaveJobInput{Job: &models.RoleExpiration{UserID: "u1"}}))
}
