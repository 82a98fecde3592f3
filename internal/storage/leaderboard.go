package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/blackjack-trainer/internal/apperrors"
)

const (
	// Redis key
	playerStatsKey   = "trainer:stats:"
	leaderboardKey   = "trainer:leaderboard:best"
	dailyLeaderboard = "trainer:leaderboard:daily:"
)

// PlayerStats 玩家累计统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	// 总计
	TotalRuns    int `json:"total_runs"`    // 总训练次数
	TotalCorrect int `json:"total_correct"` // 累计答对
	TotalWrong   int `json:"total_wrong"`   // 累计答错
	TotalPoints  int `json:"total_points"`  // 累计得分

	// 最佳成绩
	BestScore  int `json:"best_score"`  // 单次最高分
	BestStreak int `json:"best_streak"` // 历史最高连对

	// 最近一次
	LastScore int `json:"last_score"`

	// 时间
	LastPlayedAt int64 `json:"last_played_at"` // 最后训练时间
	CreatedAt    int64 `json:"created_at"`     // 首次训练时间
}

// Accuracy 累计正确率，没有作答记录时为 0
func (s *PlayerStats) Accuracy() float64 {
	answered := s.TotalCorrect + s.TotalWrong
	if answered == 0 {
		return 0
	}
	return float64(s.TotalCorrect) / float64(answered)
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	BestScore  int     `json:"best_score"`
	BestStreak int     `json:"best_streak"`
	Accuracy   float64 `json:"accuracy"`
}

// Leaderboard 排行榜管理器
type Leaderboard struct {
	redis *redis.Client
}

// NewLeaderboard 创建排行榜管理器
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client}
}

// Ping 检查 Redis 是否可用
func (lb *Leaderboard) Ping(ctx context.Context) error {
	return lb.redis.Ping(ctx).Err()
}

// GetPlayerStats 获取玩家统计，没有记录时返回 ErrStatsNotFound
func (lb *Leaderboard) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := lb.redis.Get(ctx, playerStatsKey+playerID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrStatsNotFound
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lb *Leaderboard) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lb.redis.Set(ctx, playerStatsKey+stats.PlayerID, data, 0).Err()
}

// getOrCreateStats 获取或创建玩家统计
func (lb *Leaderboard) getOrCreateStats(ctx context.Context, playerID, playerName string) (*PlayerStats, error) {
	stats, err := lb.GetPlayerStats(ctx, playerID)
	if errors.Is(err, apperrors.ErrStatsNotFound) {
		return &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			CreatedAt:  time.Now().Unix(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// RecordRun 记录一次训练的结束汇总并更新排行榜
func (lb *Leaderboard) RecordRun(ctx context.Context, playerID, playerName string, score, correct, wrong, bestStreak int) error {
	stats, err := lb.getOrCreateStats(ctx, playerID, playerName)
	if err != nil {
		return err
	}

	stats.PlayerName = playerName
	stats.TotalRuns++
	stats.TotalCorrect += correct
	stats.TotalWrong += wrong
	stats.TotalPoints += score
	stats.LastScore = score
	stats.LastPlayedAt = time.Now().Unix()

	if score > stats.BestScore {
		stats.BestScore = score
	}
	if bestStreak > stats.BestStreak {
		stats.BestStreak = bestStreak
	}

	if err := lb.SavePlayerStats(ctx, stats); err != nil {
		return err
	}
	return lb.updateLeaderboard(ctx, stats)
}

// updateLeaderboard 更新总榜和每日榜，榜单按单次最高分排序
func (lb *Leaderboard) updateLeaderboard(ctx context.Context, stats *PlayerStats) error {
	if err := lb.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.BestScore),
		Member: stats.PlayerID,
	}).Err(); err != nil {
		return err
	}

	// 每日榜记录当日最高分，保留两天
	today := time.Now().Format("2006-01-02")
	dailyKey := dailyLeaderboard + today
	if err := lb.redis.ZAdd(ctx, dailyKey, redis.Z{
		Score:  float64(stats.LastScore),
		Member: stats.PlayerID,
	}).Err(); err != nil {
		return err
	}
	lb.redis.Expire(ctx, dailyKey, 48*time.Hour)

	return nil
}

// GetLeaderboard 获取总榜前 limit 名
func (lb *Leaderboard) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	members, err := lb.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(members))
	for i, m := range members {
		playerID, ok := m.Member.(string)
		if !ok {
			continue
		}

		entry := LeaderboardEntry{
			Rank:      i + 1,
			PlayerID:  playerID,
			BestScore: int(m.Score),
		}
		if stats, err := lb.GetPlayerStats(ctx, playerID); err == nil {
			entry.PlayerName = stats.PlayerName
			entry.BestStreak = stats.BestStreak
			entry.Accuracy = stats.Accuracy()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
