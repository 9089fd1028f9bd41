package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir [path]",
		Short: "쿠키 저장소 디렉토리를 표시하거나 설정에 저장한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runDirShow(cmd)
			}
			return a.runDirSet(cmd, args[0])
		},
	}
}

func (a *App) runDirShow(cmd *cobra.Command) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), repo.Dir())
	return nil
}

func (a *App) runDirSet(cmd *cobra.Command, path string) error {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return fmt.Errorf("cli.dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("cli.dir: %w: %w", ErrRepositoryUnavailable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("cli.dir: %w: %s는 디렉토리가 아닙니다", ErrRepositoryUnavailable, abs)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	cfg.StoreDir = abs
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return fmt.Errorf("cli.dir: %w", err)
	}
	logger.Debug("저장소 경로 저장", "config", a.CfgPath, "dir", abs)
	fmt.Fprintf(cmd.OutOrStdout(), "저장소 경로를 %s로 설정했습니다\n", abs)
	return nil
}
