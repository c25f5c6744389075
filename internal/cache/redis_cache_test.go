package cache_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedakart/storefront-gateway/internal/cache"
	"github.com/vedakart/storefront-gateway/internal/config"
)

type TestData struct {
	Field1 string `json:"field1"`
	Field2 int    `json:"field2"`
}

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{
		DefaultTTL: 10 * time.Minute,
	}
	redisCache := cache.NewRedisCache(client, cfg)

	return redisCache, mock, cfg
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	testKey := "products:false"
	testValue := TestData{Field1: "value1", Field2: 123}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result TestData

		mock.ExpectGet(testKey).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err, "Get should not return an error on success")
		assert.True(t, found, "Get should return found=true when key exists")
		assert.Equal(t, testValue, result, "Get should correctly unmarshal the data")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Success - Key Not Found (Cache Miss)", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result TestData

		mock.ExpectGet(testKey).SetErr(redis.Nil)

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.NoError(t, err, "Get should not return an error on cache miss")
		assert.False(t, found, "Get should return found=false on cache miss")
		assert.Empty(t, result, "Result should be zero value on cache miss")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result TestData

		expectedErr := errors.New("redis connection error")

		mock.ExpectGet(testKey).SetErr(expectedErr)

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.Error(t, err, "Get should return an error when Redis fails")
		assert.False(t, found, "Get should return found=false on Redis error")
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to get key %s from redis", testKey), "Error message mismatch")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		var result TestData

		invalidJSON := `{"field1": "value1", "field2": "not_an_int"}`

		mock.ExpectGet(testKey).SetVal(invalidJSON)

		// Act
		found, err := redisCache.Get(ctx, testKey, &result)

		// Assert
		require.Error(t, err, "Get should return an error on unmarshal failure")
		assert.False(t, found, "Get should return found=false on unmarshal error")
		assert.Contains(t, err.Error(), "failed to unmarshal cache data for key "+testKey, "Error message mismatch")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	testKey := "sales:date:1700000000"
	testValue := TestData{Field1: "valueSet", Field2: 456}
	jsonData, err := json.Marshal(testValue)
	require.NoError(t, err)

	t.Run("Success - With Specific TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		specificTTL := 5 * time.Minute

		mock.ExpectSet(testKey, jsonData, specificTTL).SetVal("OK")
		mock.ExpectSAdd("nsidx:sales", testKey).SetVal(1)

		// Act
		err := redisCache.Set(ctx, testKey, testValue, specificTTL)

		// Assert
		require.NoError(t, err, "Set should not return an error on success")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Success - With Default TTL (ttl=0)", func(t *testing.T) {
		// Arrange
		redisCache, mock, cfg := setup(t)

		mock.ExpectSet(testKey, jsonData, cfg.DefaultTTL).SetVal("OK")
		mock.ExpectSAdd("nsidx:sales", testKey).SetVal(1)

		// Act
		err := redisCache.Set(ctx, testKey, testValue, 0) // TTL <= 0 triggers default

		// Assert
		require.NoError(t, err, "Set should not return an error when using default TTL")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		unmarshallableValue := make(chan int)

		// Act
		err := redisCache.Set(ctx, testKey, unmarshallableValue, 5*time.Minute)

		// Assert
		require.Error(t, err, "Set should return an error for unmarshallable types")
		assert.Contains(t, err.Error(), "failed to marshal value for key "+testKey, "Error message mismatch")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met (no calls expected)")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		specificTTL := 5 * time.Minute
		expectedErr := errors.New("redis SET failed")

		mock.ExpectSet(testKey, jsonData, specificTTL).SetErr(expectedErr)

		// Act
		err := redisCache.Set(ctx, testKey, testValue, specificTTL)

		// Assert
		require.Error(t, err, "Set should return an error when Redis fails")
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to set key %s in redis", testKey), "Error message mismatch")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	testKey := "product:42"

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		mock.ExpectDel(testKey).SetVal(1)
		mock.ExpectSRem("nsidx:product", testKey).SetVal(1)

		// Act
		err := redisCache.Delete(ctx, testKey)

		// Assert
		require.NoError(t, err, "Delete should not return an error on success")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis DEL failed")

		mock.ExpectDel(testKey).SetErr(expectedErr)

		// Act
		err := redisCache.Delete(ctx, testKey)

		// Assert
		require.Error(t, err, "Delete should return an error when Redis fails")
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestInvalidate(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Drops every key in the namespace", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		members := []string{"products:true", "products:false"}
		mock.ExpectSMembers("nsidx:products").SetVal(members)
		mock.ExpectDel(members...).SetVal(2)
		mock.ExpectDel("nsidx:products").SetVal(1)

		// Act
		err := redisCache.Invalidate(ctx, "products")

		// Assert
		require.NoError(t, err, "Invalidate should not return an error on success")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Success - Empty namespace", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)

		mock.ExpectSMembers("nsidx:inquiries").SetVal([]string{})
		mock.ExpectDel("nsidx:inquiries").SetVal(0)

		// Act
		err := redisCache.Invalidate(ctx, "inquiries")

		// Assert
		require.NoError(t, err, "Invalidate of an empty namespace should succeed")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})

	t.Run("Failure - Index read error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		expectedErr := errors.New("redis SMEMBERS failed")

		mock.ExpectSMembers("nsidx:sales").SetErr(expectedErr)

		// Act
		err := redisCache.Invalidate(ctx, "sales")

		// Assert
		require.Error(t, err, "Invalidate should return an error when the index read fails")
		assert.ErrorIs(t, err, expectedErr, "Error should wrap the original Redis error")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestFlush(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		mock.ExpectFlushDB().SetVal("OK")

		err := redisCache.Flush(ctx)

		require.NoError(t, err, "Flush should not return an error on success")
		assert.NoError(t, mock.ExpectationsWereMet(), "Redis mock expectations not met")
	})
}

func TestClose(t *testing.T) {
	redisCache, _, _ := setup(t)
	err := redisCache.Close()
	assert.NoError(t, err, "Close should release the client cleanly")
}

func TestKeyAndNamespace(t *testing.T) {
	assert.Equal(t, "products:true", cache.Key("products", "true"))
	assert.Equal(t, "sales:month:2024:11", cache.Key("sales", "month", "2024", "11"))
	assert.Equal(t, "incomeStats", cache.Key("incomeStats"))

	assert.Equal(t, "sales", cache.Namespace("sales:date:1700000000"))
	assert.Equal(t, "incomeStats", cache.Namespace("incomeStats"))
	assert.Equal(t, "products", cache.Namespace("products:false"))
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "products", cache.ProductsNamespace)
	assert.Equal(t, "product", cache.ProductNamespace)
	assert.Equal(t, "lowStockProducts", cache.LowStockNamespace)
	assert.Equal(t, "inquiries", cache.InquiriesNamespace)
	assert.Equal(t, "sales", cache.SalesNamespace)
	assert.Equal(t, "incomeStats", cache.IncomeStatsNamespace)
	assert.Equal(t, "isCallerAdmin", cache.IsAdminNamespace)
}
