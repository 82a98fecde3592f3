package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/blackjack-trainer/internal/config"
	"github.com/palemoky/blackjack-trainer/internal/game/session"
	"github.com/palemoky/blackjack-trainer/internal/logger"
	"github.com/palemoky/blackjack-trainer/internal/sound"
	"github.com/palemoky/blackjack-trainer/internal/storage"
	"github.com/palemoky/blackjack-trainer/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	mute := flag.Bool("mute", false, "关闭音效")
	flag.Parse()

	// TUI 独占终端，日志写文件
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			panic(r)
		}
	}()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogInfo("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 本地玩家身份
	id, err := loadOrCreateIdentity()
	if err != nil {
		logger.LogError("加载玩家身份失败: %v", err)
		fmt.Fprintf(os.Stderr, "加载玩家身份失败: %v\n", err)
		os.Exit(1)
	}

	// 排行榜存储（可选，Redis 不可用时纯本地游玩）
	board := connectLeaderboard(cfg)

	// 音效
	sounds := sound.NewSoundManager()
	if cfg.Sound.Enabled && !*mute {
		if err := sounds.Init(); err != nil {
			logger.LogError("初始化音效失败: %v", err)
		}
	}
	defer sounds.Close()

	// 训练会话
	s := session.New(session.Config{
		Decks:              cfg.Game.Decks,
		ReshuffleThreshold: cfg.Game.ReshuffleThreshold,
		QuestionTimeout:    cfg.Game.QuestionTimeoutDuration(),
		TickInterval:       cfg.Game.TickIntervalDuration(),
	})

	model := ui.NewModel(ui.Options{
		Config:      cfg,
		Session:     s,
		Sounds:      sounds,
		Leaderboard: board,
		PlayerID:    id.ID,
		PlayerName:  id.Name,
		SaveName: func(name string) error {
			id.Name = name
			return saveIdentity(id)
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.AttachProgram(p)

	if _, err := p.Run(); err != nil {
		logger.LogError("界面异常退出: %v", err)
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}
}

// connectLeaderboard 探测 Redis，不可用时返回 nil
func connectLeaderboard(cfg *config.Config) *storage.Leaderboard {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	board := storage.NewLeaderboard(client)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := board.Ping(ctx); err != nil {
		logger.LogInfo("Redis 不可用，排行榜关闭: %v", err)
		_ = client.Close()
		return nil
	}

	logger.LogInfo("排行榜已连接 %s", cfg.Redis.Addr)
	return board
}
