package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/paranormal-api/internal/engine/stats"
	characterrepo "github.com/KirkDiggler/paranormal-api/internal/repositories/character"
)

const (
	characterKeyPattern = "character:*"
	allIndexKey         = "character:all"
	playerIndexPrefix   = "character:player:"
)

func main() {
	write := flag.Bool("write", false, "Rewrite legacy records in canonical form")
	flag.Parse()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning for legacy character records...")
	if !*write {
		fmt.Println("Dry run: nothing will be written")
	}

	iter := client.Scan(ctx, 0, characterKeyPattern, 0).Iterator()

	var legacyKeys, brokenKeys, fallbackKeys []string
	var checkedCount, rewrittenCount int

	for iter.Next(ctx) {
		key := iter.Val()
		if key == allIndexKey || strings.HasPrefix(key, playerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		char, err := characterrepo.DecodeRecord(data)
		if err != nil {
			fmt.Printf("✗ Cannot decode %s: %v\n", key, err)
			brokenKeys = append(brokenKeys, key)
			continue
		}

		derived, fallback := stats.ComputeWithFallback(char.Attributes, char.Archetype)
		if fallback {
			fmt.Printf("⚠ %s has unknown archetype %q, derived as Especialista\n", key, char.Archetype)
			fallbackKeys = append(fallbackKeys, key)
		}
		stats.Apply(char, derived)

		canonical, err := json.Marshal(char)
		if err != nil {
			fmt.Printf("✗ Cannot encode %s: %v\n", key, err)
			brokenKeys = append(brokenKeys, key)
			continue
		}
		if bytes.Equal(canonical, data) {
			continue
		}

		legacyKeys = append(legacyKeys, key)
		if !*write {
			continue
		}

		pipe := client.TxPipeline()
		pipe.Set(ctx, key, canonical, 0)
		pipe.SAdd(ctx, allIndexKey, char.ID)
		if char.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+char.PlayerID, char.ID)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			fmt.Printf("Failed to rewrite %s: %v\n", key, err)
			continue
		}
		rewrittenCount++
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d records, %d not canonical, %d undecodable, %d with unknown archetype\n",
		checkedCount, len(legacyKeys), len(brokenKeys), len(fallbackKeys))

	for _, key := range legacyKeys {
		fmt.Printf("  - %s\n", key)
	}
	for _, key := range brokenKeys {
		fmt.Printf("  ✗ %s\n", key)
	}

	if *write {
		fmt.Printf("\nRewrote %d records\n", rewrittenCount)
	} else if len(legacyKeys) > 0 {
		fmt.Println("\nRun again with -write to store them in canonical form")
	}
}
