package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일 덮어쓰기")
	return cmd
}

func (a *App) runInit(cmd *cobra.Command, force bool) error {
	_, err := os.Stat(a.CfgPath)
	switch {
	case err == nil && !force:
		return fmt.Errorf("cli.init: %w: %s가 이미 있습니다 (--force로 덮어쓰기)", ErrConfig, a.CfgPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cli.init: %w", err)
	}

	cfg := config.Default()
	if a.StoreDir != "" {
		cfg.StoreDir = a.StoreDir
	} else if home, err := os.UserHomeDir(); err == nil {
		if dir, ok := config.DetectStoreDir(home); ok {
			logger.Debug("저장소 감지", "dir", dir)
			cfg.StoreDir = dir
		}
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return fmt.Errorf("cli.init: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "설정 파일 생성: %s\n", a.CfgPath)
	fmt.Fprintf(out, "저장소: %s\n", cfg.StoreDir)
	return nil
}
