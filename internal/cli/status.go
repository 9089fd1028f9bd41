package cli

import (
	"fmt"
	"time"

	"github.com/hbjs97/cswap/internal/history"
	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "현재 활성 세션과 저장소 상태를 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd)
		},
	}
}

func (a *App) runStatus(cmd *cobra.Command) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "저장소: %s\n", repo.Dir())

	active, err := repo.HasActive()
	if err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}
	if !active {
		fmt.Fprintln(out, "활성 세션: 없음")
		return nil
	}

	p, ok, err := repo.Current()
	switch {
	case err != nil:
		return fmt.Errorf("cli.status: %w", err)
	case ok:
		fmt.Fprintf(out, "활성 세션: %s (%s)\n", activeStyle.Render(p.ID), p.DisplayName())
	default:
		fmt.Fprintln(out, "활성 세션: 알 수 없음 (저장된 프로필과 일치하지 않음)")
	}

	h, err := history.Load(a.historyPath())
	if err != nil {
		logger.Debug("기록 읽기 실패", "err", err)
		return nil
	}
	if last, ok := h.Last(history.ActionActivate); ok {
		when := last.At
		if t, err := last.Time(); err == nil {
			when = t.Local().Format(time.DateTime)
		}
		fmt.Fprintf(out, "마지막 전환: %s (%s)\n", last.Profile, faintStyle.Render(when))
	}
	return nil
}
