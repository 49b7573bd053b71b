package testutil

import (
	"context"
	"fmt"
	"log"
	"testing"

	"eventflow/config"
	"eventflow/internal/database"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SetupDatabase 連到測試 DB 並套用 schema；連不上時回傳 error，由呼叫端決定 skip
func SetupDatabase() (*pgxpool.Pool, func(), error) {
	cfg := config.LoadTestConfig()

	testDB, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize test database: %v", err)
	}

	if err := database.Migrate(context.Background(), testDB); err != nil {
		testDB.Close()
		return nil, nil, fmt.Errorf("failed to migrate test database: %v", err)
	}
	log.Println("Test database connected successfully")

	cleanup := func() {
		testDB.Close()
		log.Println("Test database closed")
	}
	return testDB, cleanup, nil
}

// Truncate 清空所有測試資料，保留 schema
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		"TRUNCATE event_registrations, events, user_profiles, users RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// SetupRedis 以 miniredis 啟動記憶體內的 Redis，測試結束自動關閉
func SetupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// NoopTransactor 直接執行 fn，tx 為 nil；搭配 repository mock 使用
type NoopTransactor struct {
	Calls int
}

func (n *NoopTransactor) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	n.Calls++
	return fn(nil)
}
