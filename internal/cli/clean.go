package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newCleanCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "중단된 전환이 남긴 임시 파일을 지운다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClean(cmd, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "확인 없이 삭제")
	return cmd
}

func (a *App) runClean(cmd *cobra.Command, yes bool) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	strays, err := repo.Strays()
	if err != nil {
		return fmt.Errorf("cli.clean: %w", err)
	}
	if len(strays) == 0 {
		fmt.Fprintln(out, "지울 임시 파일이 없습니다")
		return nil
	}
	for _, path := range strays {
		fmt.Fprintf(out, "  %s\n", path)
	}

	if !yes {
		if a.Forms == nil {
			return fmt.Errorf("cli.clean: %w: --yes 필요", ErrInteractiveRequired)
		}
		ok, err := a.Forms.RunConfirm(fmt.Sprintf("임시 파일 %d개를 지울까요? 진행 중인 전환이 없어야 합니다.", len(strays)))
		if err != nil {
			return fmt.Errorf("cli.clean: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "취소했습니다")
			return nil
		}
	}

	removed, err := repo.CleanStrays()
	if err != nil {
		return fmt.Errorf("cli.clean: %w", err)
	}
	fmt.Fprintf(out, "임시 파일 %d개를 지웠습니다\n", removed)
	return nil
}
