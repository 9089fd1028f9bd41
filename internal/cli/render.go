package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/hbjs97/cswap/internal/store"
)

var (
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "246"})
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
)

// printProfiles는 프로필 목록을 출력한다. 활성 프로필에는 *를 붙인다.
func printProfiles(w io.Writer, profiles []store.Profile, active string) {
	for _, p := range profiles {
		line := fmt.Sprintf("  %-20s %s", p.ID, faintStyle.Render(p.DisplayName()))
		if p.ID == active {
			line = activeStyle.Render(fmt.Sprintf("* %-20s", p.ID)) + " " + faintStyle.Render(p.DisplayName())
		}
		fmt.Fprintln(w, line)
	}
}

// currentID는 활성 파일과 내용이 같은 프로필 식별자를 반환한다. 알 수 없으면 빈 문자열이다.
func currentID(repo *store.Repository) string {
	p, ok, err := repo.Current()
	if err != nil || !ok {
		return ""
	}
	return p.ID
}

func profileIDs(profiles []store.Profile) []string {
	ids := make([]string, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}
	return ids
}
