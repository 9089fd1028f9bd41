package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hbjs97/cswap/internal/config"
	"github.com/hbjs97/cswap/internal/history"
	"github.com/hbjs97/cswap/internal/logging"
	"github.com/hbjs97/cswap/internal/procscan"
	"github.com/hbjs97/cswap/internal/prompt"
	"github.com/hbjs97/cswap/internal/store"
	"github.com/spf13/cobra"
)

var logger = logging.GetLogger("cli")

// App은 CLI 명령이 공유하는 의존성이다. 테스트는 Procs와 Forms를 가짜로 바꾼다.
type App struct {
	CfgPath  string
	StoreDir string
	Verbose  bool

	Procs procscan.Lister
	Forms prompt.FormRunner
}

// NewApp은 실제 프로세스 조회와 huh 폼을 쓰는 App을 생성한다.
func NewApp() *App {
	return &App{
		CfgPath: defaultConfigPath(),
		Procs:   &procscan.SystemLister{},
		Forms:   &prompt.HuhFormRunner{},
	}
}

// NewRootCmd는 cswap CLI의 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	return NewApp().NewRootCmd()
}

// NewRootCmd는 a를 사용하는 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.CfgPath == "" {
		a.CfgPath = defaultConfigPath()
	}

	cmd := &cobra.Command{
		Use:          "cswap",
		Short:        "세션 쿠키 프로필 전환기",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if a.Verbose {
				logging.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().StringVar(&a.StoreDir, "dir", a.StoreDir, "쿠키 저장소 디렉토리 (설정의 store_dir보다 우선)")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newListCmd(),
		a.newUseCmd(),
		a.newPickCmd(),
		a.newCaptureCmd(),
		a.newStatusCmd(),
		a.newDoctorCmd(),
		a.newDirCmd(),
		a.newWatchCmd(),
		a.newCleanCmd(),
		a.newInitCmd(),
	)
	return cmd
}

// loadConfig는 설정 파일을 읽는다. 파일이 없으면 기본 설정을 쓴다.
func (a *App) loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(a.CfgPath)
}

// repository는 --dir 또는 설정의 store_dir로 저장소를 연다.
func (a *App) repository(cfg *config.Config) (*store.Repository, error) {
	var expanded string
	var err error
	if a.StoreDir != "" {
		expanded, err = config.ExpandPath(a.StoreDir)
	} else {
		expanded, err = cfg.ResolvedStoreDir()
	}
	if err != nil {
		return nil, fmt.Errorf("cli.repository: %w", err)
	}
	logger.Debug("저장소", "dir", expanded)
	return store.New(expanded, store.WithTrimTxtSuffix(cfg.TrimTxtSuffix)), nil
}

// open은 설정과 저장소를 함께 준비한다.
func (a *App) open() (*config.Config, *store.Repository, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	repo, err := a.repository(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, repo, nil
}

func (a *App) procs() procscan.Lister {
	if a.Procs == nil {
		return &procscan.SystemLister{}
	}
	return a.Procs
}

func (a *App) historyPath() string {
	return filepath.Join(filepath.Dir(a.CfgPath), "history.json")
}

// record는 활성화 기록을 남긴다. 기록 실패는 명령을 실패시키지 않는다.
func (a *App) record(cfg *config.Config, repo *store.Repository, profile, action string) {
	h, err := history.Load(a.historyPath())
	if err != nil {
		logger.Warn("기록 읽기 실패", "err", err)
		return
	}
	entry := history.Entry{Profile: profile, Action: action}
	if fp, err := repo.ActiveFingerprint(); err == nil {
		entry.Fingerprint = fp.String()
	}
	h.Append(entry, cfg.HistoryLimit)
	if err := h.Save(a.historyPath()); err != nil {
		logger.Warn("기록 저장 실패", "err", err)
	}
}

func defaultConfigPath() string {
	return filepath.Join(configDir(), "cswap", "config.toml")
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return filepath.Join(home, ".config")
}
