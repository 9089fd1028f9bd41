package cli

import (
	"context"
	"fmt"

	"github.com/hbjs97/cswap/internal/history"
	"github.com/hbjs97/cswap/internal/swap"
	"github.com/spf13/cobra"
)

func (a *App) newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "use <profile>",
		Aliases: []string{"activate", "switch"},
		Short:   "프로필의 쿠키를 활성 파일로 전환한다",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUse(cmd, args[0])
		},
		ValidArgsFunction: a.completeProfiles,
	}
}

func (a *App) runUse(cmd *cobra.Command, id string) error {
	cfg, repo, err := a.open()
	if err != nil {
		return err
	}

	profile, err := repo.Lookup(id)
	if err != nil {
		return fmt.Errorf("cli.use: %w", err)
	}

	a.warnIfRunning(cmd.Context(), cmd, cfg.AppProcess)

	if err := swap.New(repo).Activate(profile); err != nil {
		return fmt.Errorf("cli.use: %w", err)
	}
	a.record(cfg, repo, profile.ID, history.ActionActivate)

	fmt.Fprintf(cmd.OutOrStdout(), "%s 프로필로 전환했습니다\n", okStyle.Render(profile.DisplayName()))
	return nil
}

// warnIfRunning은 애플리케이션이 실행 중이면 경고만 출력한다. 전환을 막지는 않는다.
func (a *App) warnIfRunning(ctx context.Context, cmd *cobra.Command, name string) {
	if name == "" {
		return
	}
	running, err := a.procs().Running(ctx, name)
	if err != nil {
		logger.Debug("프로세스 확인 실패", "err", err)
		return
	}
	if len(running) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render(
			fmt.Sprintf("경고: %s 실행 중 (pid %d), 재시작해야 새 세션이 적용됩니다", name, running[0].PID)))
	}
}

// completeProfiles는 셸 자동완성에 프로필 식별자를 제공한다.
func (a *App) completeProfiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, repo, err := a.open()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	profiles, err := repo.Sorted()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return profileIDs(profiles), cobra.ShellCompDirectiveNoFileComp
}
