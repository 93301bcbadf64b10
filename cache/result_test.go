package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/sprintertech/bridge-orchestrator/cache"
	"github.com/stretchr/testify/suite"
)

type ResultCacheTestSuite struct {
	suite.Suite

	cache  *cache.ResultCache[string]
	cancel context.CancelFunc
}

func TestRunResultCacheTestSuite(t *testing.T) {
	suite.Run(t, new(ResultCacheTestSuite))
}

func (s *ResultCacheTestSuite) SetupTest() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.cache = cache.NewResultCache[string](time.Millisecond*100, 0)
	s.cache.Start(ctx)
}

func (s *ResultCacheTestSuite) TearDownTest() {
	s.cancel()
}

func (s *ResultCacheTestSuite) Test_Get_Missing() {
	_, ok := s.cache.Get("invalid")

	s.False(ok)
}

func (s *ResultCacheTestSuite) Test_Get_Valid() {
	s.cache.Set("key", "value")

	v, ok := s.cache.Get("key")

	s.True(ok)
	s.Equal("value", v)
	s.Equal([]string{"value"}, s.cache.Values())
}

func (s *ResultCacheTestSuite) Test_Get_Expired() {
	s.cache.Set("key", "value")
	time.Sleep(time.Millisecond * 150)

	_, ok := s.cache.Get("key")

	s.False(ok)
}

func (s *ResultCacheTestSuite) Test_Get_HitDoesNotExtendTTL() {
	s.cache.Set("key", "value")
	time.Sleep(time.Millisecond * 60)
	_, ok := s.cache.Get("key")
	s.True(ok)
	time.Sleep(time.Millisecond * 60)

	_, ok = s.cache.Get("key")

	s.False(ok)
}

func (s *ResultCacheTestSuite) Test_Delete() {
	s.cache.Set("key", "value")
	s.cache.Delete("key")

	_, ok := s.cache.Get("key")

	s.False(ok)
}

func (s *ResultCacheTestSuite) Test_Capacity() {
	c := cache.NewResultCache[int](time.Minute, 2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")

	s.False(ok)
	s.Equal(2, c.Len())
}
