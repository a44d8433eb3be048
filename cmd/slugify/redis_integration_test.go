//go:build integration

package main

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_RedisCache_Integration(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err(), "failed to connect to Redis")

	cmd := (&cli{}).newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--lower"}))
	prefix := cacheNamespace(cmd, "")
	key := prefix + ":Integration Test"
	t.Cleanup(func() { _ = client.Del(ctx, key).Err() })

	env := map[string]string{"SLUGIFY_REDIS_URL": url}
	res := execute(t, "", true, env, "--lower", "Integration Test")
	require.Equal(t, 0, res.code, "stderr: %s", res.stderr)
	assert.Equal(t, "integration-test\n", res.stdout)

	val, err := client.Get(ctx, key).Result()
	require.NoError(t, err)
	assert.Equal(t, "integration-test", val)

	// A seeded entry is served as is.
	require.NoError(t, client.Set(ctx, key, "from-cache", 0).Err())
	res = execute(t, "", true, env, "--lower", "Integration Test")
	require.Equal(t, 0, res.code)
	assert.Equal(t, "from-cache\n", res.stdout)
}
