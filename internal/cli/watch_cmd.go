package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hbjs97/cswap/internal/watch"
	"github.com/spf13/cobra"
)

func (a *App) newWatchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "저장소 변경을 감시하며 프로필 목록을 다시 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch(cmd, debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "연속 변경을 묶는 대기 시간")
	return cmd
}

func (a *App) runWatch(cmd *cobra.Command, debounce time.Duration) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	if err := a.runList(cmd); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	return watch.Run(ctx, repo.Dir(), debounce, func() {
		fmt.Fprintln(out, faintStyle.Render("--- "+time.Now().Format(time.TimeOnly)+" ---"))
		if err := a.runList(cmd); err != nil {
			logger.Warn("목록 갱신 실패", "err", err)
		}
	})
}
