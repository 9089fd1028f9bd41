package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "저장소의 프로필 목록을 표시한다",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
}

func (a *App) runList(cmd *cobra.Command) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	profiles, err := repo.Sorted()
	if err != nil {
		return fmt.Errorf("cli.list: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintf(out, "%s에서 cookies_* 파일을 찾지 못했습니다.\n", repo.Dir())
		fmt.Fprintln(out, "로그인 후 'cswap capture <이름>'으로 현재 세션을 저장하세요.")
		return nil
	}
	printProfiles(out, profiles, currentID(repo))
	return nil
}
