package cli

import (
	"fmt"

	"github.com/hbjs97/cswap/internal/prompt"
	"github.com/spf13/cobra"
)

func (a *App) newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "목록에서 프로필을 골라 전환한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPick(cmd)
		},
	}
}

func (a *App) runPick(cmd *cobra.Command) error {
	_, repo, err := a.open()
	if err != nil {
		return err
	}
	profiles, err := repo.Sorted()
	if err != nil {
		return fmt.Errorf("cli.pick: %w", err)
	}
	if len(profiles) == 0 {
		return fmt.Errorf("cli.pick: %w: %s에 cookies_* 파일이 없습니다", ErrProfileNotFound, repo.Dir())
	}
	if a.Forms == nil {
		return fmt.Errorf("cli.pick: %w", ErrInteractiveRequired)
	}

	active := currentID(repo)
	choices := make([]prompt.Choice, len(profiles))
	for i, p := range profiles {
		choices[i] = prompt.Choice{ID: p.ID, Label: p.DisplayName(), Active: p.ID == active}
	}

	id, err := a.Forms.RunProfileSelect(choices)
	if err != nil {
		return fmt.Errorf("cli.pick: %w", err)
	}
	return a.runUse(cmd, id)
}
