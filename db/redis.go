// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheRole(ctx context.Context, role *model.Role) error {
	roleJSON, err := json.Marshal(role)
	if err != nil {
		return fmt.Errorf("failed to marshal role: %w", err)
	}

	key := fmt.Sprintf("role:%s", role.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, roleJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache role: %w", err)
	}

	logger.Debug("Role cached successfully", zap.String("roleID", role.ID))
	return nil
}

func GetCachedRole(ctx context.Context, roleID string) (*model.Role, error) {
	key := fmt.Sprintf("role:%s", roleID)
	roleJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Role not found in cache", zap.String("roleID", roleID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get role from cache: %w", err)
	}

	var role model.Role
	err = json.Unmarshal([]byte(roleJSON), &role)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal role: %w", err)
	}

	return &role, nil
}

func DeleteCachedRole(ctx context.Context, roleID string) error {
	key := fmt.Sprintf("role:%s", roleID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete role from cache: %w", err)
	}
	logger.Debug("Role deleted from cache", zap.String("roleID", roleID))
	return nil
}

// CachePermissionCheck stores the outcome of a (role, module, action)
// lookup. Entries are short-lived so permission edits take effect
// without explicit invalidation of every affected key.
func CachePermissionCheck(ctx context.Context, roleID, moduleID string, action model.Action, allowed bool) error {
	key := fmt.Sprintf("perm:%s:%s:%s", roleID, moduleID, action)
	value := "0"
	if allowed {
		value = "1"
	}
	err := RedisClient.Set(ctx, key, value, time.Minute).Err()
	if err != nil {
		return fmt.Errorf("failed to cache permission check: %w", err)
	}
	return nil
}

// GetCachedPermissionCheck returns (allowed, found, error).
func GetCachedPermissionCheck(ctx context.Context, roleID, moduleID string, action model.Action) (bool, bool, error) {
	key := fmt.Sprintf("perm:%s:%s:%s", roleID, moduleID, action)
	value, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, false, nil
	} else if err != nil {
		return false, false, fmt.Errorf("failed to get permission check from cache: %w", err)
	}
	return value == "1", true, nil
}

// InvalidateRolePermissions drops every cached permission decision for
// a role after its permission rows change.
func InvalidateRolePermissions(ctx context.Context, roleID string) error {
	pattern := fmt.Sprintf("perm:%s:*", roleID)
	iter := RedisClient.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to invalidate permission cache: %w", err)
		}
	}
	return iter.Err()
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
