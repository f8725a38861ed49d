package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/exchange_desk/internal/adapters/cache"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	store  *cache.RedisStore
	ctx    context.Context
}

func (suite *RedisStoreTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.server = miniredis.RunT(suite.T())
	client := redis.NewClient(&redis.Options{Addr: suite.server.Addr()})
	suite.store = cache.NewRedisStoreWithClient(client, "exchange_desk:")
}

func (suite *RedisStoreTestSuite) TearDownTest() {
	suite.NoError(suite.store.Close())
}

func (suite *RedisStoreTestSuite) TestGetMissAndHit() {
	_, ok, err := suite.store.Get(suite.ctx, "currenciesData:1")
	suite.Require().NoError(err)
	suite.False(ok)

	suite.Require().NoError(suite.store.Set(suite.ctx, "currenciesData:1", []byte(`[{"code":"AED"}]`), 0))

	got, ok, err := suite.store.Get(suite.ctx, "currenciesData:1")
	suite.Require().NoError(err)
	suite.True(ok)
	suite.Equal(`[{"code":"AED"}]`, string(got))
	suite.True(suite.server.Exists("exchange_desk:currenciesData:1"), "keys carry the prefix")
}

func (suite *RedisStoreTestSuite) TestTTL() {
	suite.Require().NoError(suite.store.Set(suite.ctx, "draft:abc", []byte(`{}`), time.Minute))
	suite.Equal(time.Minute, suite.server.TTL("exchange_desk:draft:abc"))

	suite.server.FastForward(61 * time.Second)

	_, ok, err := suite.store.Get(suite.ctx, "draft:abc")
	suite.Require().NoError(err)
	suite.False(ok)
}

func (suite *RedisStoreTestSuite) TestDelete() {
	suite.Require().NoError(suite.store.Set(suite.ctx, "lang:1", []byte(`"en"`), 0))
	suite.Require().NoError(suite.store.Delete(suite.ctx, "lang:1"))

	_, ok, err := suite.store.Get(suite.ctx, "lang:1")
	suite.Require().NoError(err)
	suite.False(ok)

	suite.NoError(suite.store.Delete(suite.ctx, "missing"))
}

func (suite *RedisStoreTestSuite) TestIncr() {
	for want := int64(1); want <= 3; want++ {
		n, err := suite.store.Incr(suite.ctx, "otpAttempts:abc", time.Minute)
		suite.Require().NoError(err)
		suite.Equal(want, n)
	}
	suite.Equal(time.Minute, suite.server.TTL("exchange_desk:otpAttempts:abc"))

	suite.server.FastForward(61 * time.Second)
	n, err := suite.store.Incr(suite.ctx, "otpAttempts:abc", time.Minute)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n, "an expired counter starts over")
}

func (suite *RedisStoreTestSuite) TestServerDown() {
	suite.server.Close()

	_, _, err := suite.store.Get(suite.ctx, "currenciesData:1")
	suite.Error(err)
	suite.Error(suite.store.Set(suite.ctx, "draft:abc", []byte(`{}`), time.Minute))
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}
