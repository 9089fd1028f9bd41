package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/cswap/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "설정과 쿠키 저장소를 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	results := []doctor.DiagResult{doctor.CheckConfig(a.CfgPath)}

	cfg, err := a.loadConfig()
	if err != nil {
		printDiagResults(out, results)
		return nil
	}
	repo, err := a.repository(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "저장소: %s\n", repo.Dir())
	results = append(results, doctor.RunAll(cmd.Context(), repo, a.procs(), cfg.AppProcess)...)
	printDiagResults(out, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return okStyle.Render("OK")
	case doctor.StatusWarn:
		return warnStyle.Render("!!")
	case doctor.StatusFail:
		return failStyle.Render("FAIL")
	default:
		return "??"
	}
}
