package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// identity 本地玩家身份，让多次训练的成绩聚合到同一个玩家
type identity struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

func identityPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".blackjack-trainer", "player.yaml"), nil
}

// loadOrCreateIdentity 读取本地身份文件，不存在则生成新的玩家 ID
func loadOrCreateIdentity() (*identity, error) {
	path, err := identityPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var id identity
		if err := yaml.Unmarshal(data, &id); err == nil && id.ID != "" {
			return &id, nil
		}
		// 文件损坏时重新生成
	}

	id := &identity{ID: uuid.NewString()}
	if err := saveIdentity(id); err != nil {
		return nil, err
	}
	return id, nil
}

func saveIdentity(id *identity) error {
	path, err := identityPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create identity directory: %w", err)
	}

	data, err := yaml.Marshal(id)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
