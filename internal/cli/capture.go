package cli

import (
	"fmt"

	"github.com/hbjs97/cswap/internal/history"
	"github.com/spf13/cobra"
)

func (a *App) newCaptureCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "capture [name]",
		Aliases: []string{"save"},
		Short:   "현재 로그인된 세션을 새 프로필로 저장한다",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			return a.runCapture(cmd, id)
		},
	}
}

func (a *App) runCapture(cmd *cobra.Command, id string) error {
	cfg, repo, err := a.open()
	if err != nil {
		return err
	}

	if id == "" {
		if a.Forms == nil {
			return fmt.Errorf("cli.capture: %w: 프로필 이름", ErrInteractiveRequired)
		}
		profiles, err := repo.Sorted()
		if err != nil {
			return fmt.Errorf("cli.capture: %w", err)
		}
		id, err = a.Forms.RunIdentifierInput(profileIDs(profiles))
		if err != nil {
			return fmt.Errorf("cli.capture: %w", err)
		}
	}

	profile, err := repo.Capture(id)
	if err != nil {
		return fmt.Errorf("cli.capture: %w", err)
	}
	a.record(cfg, repo, profile.ID, history.ActionCapture)

	fmt.Fprintf(cmd.OutOrStdout(), "현재 세션을 %s 프로필로 저장했습니다: %s\n",
		okStyle.Render(profile.DisplayName()), profile.Path)
	return nil
}
