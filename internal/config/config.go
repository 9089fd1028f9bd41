package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

const (
	// CurrentVersion은 지원하는 설정 파일 버전이다.
	CurrentVersion = 1
	// DefaultStoreDir는 Sober flatpak의 쿠키 디렉토리다.
	DefaultStoreDir = "~/.var/app/org.vinegarhq.Sober/data/sober"
	// DefaultAppProcess는 swap 전에 실행 여부를 확인하는 프로세스 이름이다.
	DefaultAppProcess = "sober"
	// DefaultHistoryLimit는 보관하는 활성화 기록 수다.
	DefaultHistoryLimit = 50
)

// Config는 cswap 설정 파일의 최상위 구조체다.
type Config struct {
	Version       int    `toml:"version"`
	StoreDir      string `toml:"store_dir"`
	TrimTxtSuffix bool   `toml:"trim_txt_suffix"`
	AppProcess    string `toml:"app_process"`
	HistoryLimit  int    `toml:"history_limit"`
}

// Default는 설정 파일이 없을 때 쓰는 기본 설정이다.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault는 파일이 없으면 기본 설정을, 있으면 Load 결과를 반환한다.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Save는 설정을 TOML로 저장한다 (0600 권한, 상위 디렉토리 0700).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	// 기존 파일은 OpenFile이 권한을 바꾸지 않는다.
	return os.Chmod(path, 0600)
}

// ResolvedStoreDir는 "~/"를 확장한 저장소 경로를 반환한다.
func (c *Config) ResolvedStoreDir() (string, error) {
	return ExpandPath(c.StoreDir)
}

// ExpandPath는 "~/"로 시작하는 경로를 홈 디렉토리 기준으로 확장한다.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config.ExpandPath: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// ValidateFilePermissions는 파일 권한이 0600보다 넓으면 에러를 반환한다.
func ValidateFilePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("config.ValidateFilePermissions: %w", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		return fmt.Errorf("config.ValidateFilePermissions: %s 권한이 %o (0600 필요)", path, perm)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
	if c.StoreDir == "" {
		c.StoreDir = DefaultStoreDir
	}
	if c.AppProcess == "" {
		c.AppProcess = DefaultAppProcess
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
}

func (c *Config) validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("config.Load: %w: history_limit는 0 이상이어야 합니다", ErrConfig)
	}
	if strings.ContainsRune(c.StoreDir, 0) {
		return fmt.Errorf("config.Load: %w: store_dir에 NUL 문자가 있습니다", ErrConfig)
	}
	return nil
}
