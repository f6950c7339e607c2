package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/uttt-engine/internal/entity"
)

var ErrMatchNotFound = errors.New("match not found")

const (
	fieldXWins = "x_wins"
	fieldOWins = "o_wins"
	fieldDraws = "draws"
)

type StatsRepository interface {
	SaveMatch(ctx context.Context, result *entity.MatchResult) error
	GetMatch(ctx context.Context, id string) (*entity.MatchResult, error)
	RecordResult(ctx context.Context, result *entity.MatchResult) error
	GetStandings(ctx context.Context, playerX, playerO string) (*entity.Standings, error)
}

type dbStats struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStatsRepository - stores finished games for ttl and keeps standings per pairing without expiry.
func NewStatsRepository(client *redis.Client, ttl time.Duration) StatsRepository {
	return &dbStats{
		client: client,
		ttl:    ttl,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func standingsKey(playerX, playerO string) string {
	return "standings:" + playerX + ":" + playerO
}

func (that *dbStats) SaveMatch(ctx context.Context, result *entity.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	if err = that.client.Set(ctx, matchKey(result.ID), resultJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbStats) GetMatch(ctx context.Context, id string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.MatchResult{}, ErrMatchNotFound
	}

	if err != nil {
		return &entity.MatchResult{}, fmt.Errorf("%w by id", err)
	}

	var existing entity.MatchResult
	if err = json.Unmarshal([]byte(response), &existing); err != nil {
		return &entity.MatchResult{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &existing, nil
}

// RecordResult - bumps the standings counter for the result's outcome.
func (that *dbStats) RecordResult(ctx context.Context, result *entity.MatchResult) error {
	var field string
	switch result.Status {
	case entity.XWins:
		field = fieldXWins
	case entity.OWins:
		field = fieldOWins
	case entity.Draw:
		field = fieldDraws
	default:
		return fmt.Errorf("cannot record match %s with status %s", result.ID, result.Status)
	}

	key := standingsKey(result.PlayerX, result.PlayerO)
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, key, fieldXWins, 0)
		pipe.HSetNX(ctx, key, fieldOWins, 0)
		pipe.HSetNX(ctx, key, fieldDraws, 0)
		pipe.HIncrBy(ctx, key, field, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetStandings - returns zero standings for a pairing that never played.
func (that *dbStats) GetStandings(ctx context.Context, playerX, playerO string) (*entity.Standings, error) {
	fields, err := that.client.HGetAll(ctx, standingsKey(playerX, playerO)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	standings := &entity.Standings{PlayerX: playerX, PlayerO: playerO}
	for field, target := range map[string]*int64{
		fieldXWins: &standings.XWins,
		fieldOWins: &standings.OWins,
		fieldDraws: &standings.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return standings, nil
}
