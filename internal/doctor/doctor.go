package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hbjs97/cswap/internal/config"
	"github.com/hbjs97/cswap/internal/procscan"
	"github.com/hbjs97/cswap/internal/store"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일을 읽을 수 있는지와 권한을 확인한다.
func CheckConfig(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음, 기본 설정 사용", path),
			Fix:     "cswap init 실행",
		}
	}
	if _, err := config.Load(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 확인 또는 cswap init --force 실행", path),
		}
	}
	if err := config.ValidateFilePermissions(path); err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusWarn,
			Message: err.Error(),
			Fix:     fmt.Sprintf("chmod 600 %s", path),
		}
	}
	return DiagResult{Name: "config", Status: StatusOK, Message: path}
}

// CheckStore는 저장소 디렉토리를 읽고 쓸 수 있는지 확인한다.
func CheckStore(repo *store.Repository) DiagResult {
	if _, err := repo.List(); err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 읽기 실패: %v", repo.Dir(), err),
			Fix:     "cswap dir <경로> 로 저장소 위치 지정",
		}
	}
	if err := repo.Probe(); err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 쓰기 불가: %v", repo.Dir(), err),
			Fix:     fmt.Sprintf("%s 권한 확인", repo.Dir()),
		}
	}
	return DiagResult{Name: "store", Status: StatusOK, Message: repo.Dir()}
}

// CheckActive는 활성 쿠키 파일이 있는지 확인한다.
func CheckActive(repo *store.Repository) DiagResult {
	ok, err := repo.HasActive()
	switch {
	case err != nil:
		return DiagResult{Name: "active", Status: StatusFail, Message: err.Error()}
	case !ok:
		return DiagResult{
			Name:    "active",
			Status:  StatusWarn,
			Message: "활성 세션 없음",
			Fix:     "애플리케이션에서 로그인하거나 cswap use <프로필> 실행",
		}
	}
	return DiagResult{Name: "active", Status: StatusOK, Message: repo.ActivePath()}
}

// CheckProfiles는 발견된 프로필 수를 확인한다.
func CheckProfiles(repo *store.Repository) DiagResult {
	profiles, err := repo.Sorted()
	if err != nil {
		return DiagResult{Name: "profiles", Status: StatusFail, Message: err.Error()}
	}
	if len(profiles) == 0 {
		return DiagResult{
			Name:    "profiles",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s* 파일 없음", store.BackupPrefix),
			Fix:     "로그인 후 cswap capture <이름> 실행",
		}
	}
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.ID
	}
	return DiagResult{
		Name:    "profiles",
		Status:  StatusOK,
		Message: fmt.Sprintf("%d개: %s", len(profiles), strings.Join(names, ", ")),
	}
}

// CheckStrays는 중단된 swap이 남긴 임시 파일을 확인한다.
func CheckStrays(repo *store.Repository) DiagResult {
	strays, err := repo.Strays()
	if err != nil {
		return DiagResult{Name: "strays", Status: StatusFail, Message: err.Error()}
	}
	if len(strays) > 0 {
		return DiagResult{
			Name:    "strays",
			Status:  StatusWarn,
			Message: fmt.Sprintf("임시 파일 %d개 남아 있음", len(strays)),
			Fix:     "cswap clean 실행",
		}
	}
	return DiagResult{Name: "strays", Status: StatusOK, Message: "임시 파일 없음"}
}

// CheckAppRunning은 애플리케이션이 실행 중인지 확인한다.
// 실행 중에 전환하면 애플리케이션이 종료하면서 쿠키 파일을 덮어쓸 수 있다.
func CheckAppRunning(ctx context.Context, procs procscan.Lister, name string) DiagResult {
	running, err := procs.Running(ctx, name)
	if err != nil {
		return DiagResult{
			Name:    "app",
			Status:  StatusWarn,
			Message: fmt.Sprintf("프로세스 확인 실패: %v", err),
		}
	}
	if len(running) > 0 {
		return DiagResult{
			Name:    "app",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 실행 중 (pid %d)", name, running[0].PID),
			Fix:     fmt.Sprintf("%s 종료 후 프로필 전환", name),
		}
	}
	return DiagResult{Name: "app", Status: StatusOK, Message: fmt.Sprintf("%s 실행 중 아님", name)}
}

// RunAll은 저장소 관련 진단을 모두 실행한다. 저장소를 읽을 수 없으면 이후 검사는 건너뛴다.
func RunAll(ctx context.Context, repo *store.Repository, procs procscan.Lister, appName string) []DiagResult {
	results := []DiagResult{CheckStore(repo)}
	if results[0].Status != StatusFail {
		results = append(results,
			CheckActive(repo),
			CheckProfiles(repo),
			CheckStrays(repo),
		)
	}
	results = append(results, CheckAppRunning(ctx, procs, appName))
	return results
}
