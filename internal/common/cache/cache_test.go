package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CacheTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	now       time.Time
	cache     *Cache
	ctx       context.Context
}

func (s *CacheTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.now = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.cache = New(&Config{TTL: time.Minute, Clock: s.mockClock})
	s.ctx = context.Background()
}

func (s *CacheTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCacheTestSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) counter(calls *int32, value int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func (s *CacheTestSuite) TestFetchCachesValue() {
	var calls int32
	for i := 0; i < 3; i++ {
		v, err := Fetch(s.ctx, s.cache, "k", s.counter(&calls, 7))
		s.Require().NoError(err)
		s.Equal(7, v)
	}
	s.Equal(int32(1), calls)
}

func (s *CacheTestSuite) TestFetchReloadsAfterTTL() {
	var calls int32
	_, _ = Fetch(s.ctx, s.cache, "k", s.counter(&calls, 1))

	s.now = s.now.Add(2 * time.Minute)
	v, err := Fetch(s.ctx, s.cache, "k", s.counter(&calls, 2))
	s.Require().NoError(err)
	s.Equal(2, v)
	s.Equal(int32(2), calls)
}

func (s *CacheTestSuite) TestInvalidateForcesReload() {
	var calls int32
	_, _ = Fetch(s.ctx, s.cache, "k", s.counter(&calls, 1))

	s.cache.Invalidate("k")
	v, err := Fetch(s.ctx, s.cache, "k", s.counter(&calls, 2))
	s.Require().NoError(err)
	s.Equal(2, v)
}

func (s *CacheTestSuite) TestErrorsAreNotCached() {
	boom := errors.New("boom")
	_, err := Fetch(s.ctx, s.cache, "k", func(context.Context) (int, error) { return 0, boom })
	s.ErrorIs(err, boom)

	var calls int32
	v, err := Fetch(s.ctx, s.cache, "k", s.counter(&calls, 3))
	s.Require().NoError(err)
	s.Equal(3, v)
	s.Equal(int32(1), calls)
}

func (s *CacheTestSuite) TestPurge() {
	var calls int32
	_, _ = Fetch(s.ctx, s.cache, "a", s.counter(&calls, 1))
	_, _ = Fetch(s.ctx, s.cache, "b", s.counter(&calls, 1))
	s.Equal(2, s.cache.Len())

	s.cache.Purge()
	s.Equal(0, s.cache.Len())
}

func (s *CacheTestSuite) TestConcurrentMissesShareFetch() {
	var calls int32
	release := make(chan struct{})
	fetch := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 5, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Fetch(s.ctx, s.cache, "k", fetch)
			s.NoError(err)
			s.Equal(5, v)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	s.LessOrEqual(atomic.LoadInt32(&calls), int32(2))
}

func (s *CacheTestSuite) TestNilCachePassesThrough() {
	var calls int32
	var c *Cache
	_, _ = Fetch(s.ctx, c, "k", s.counter(&calls, 1))
	_, _ = Fetch(s.ctx, c, "k", s.counter(&calls, 1))
	s.Equal(int32(2), calls)
	c.Invalidate("k")
}
