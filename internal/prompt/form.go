// Package prompt는 터미널 대화형 입력을 담당한다.
package prompt

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/hbjs97/cswap/internal/store"
)

// ErrAborted는 사용자가 입력을 취소했을 때 반환된다.
var ErrAborted = errors.New("입력이 취소되었습니다")

// Choice는 선택 목록의 한 항목이다.
type Choice struct {
	ID     string
	Label  string
	Active bool
}

// FormRunner는 대화형 폼 실행을 추상화한다.
type FormRunner interface {
	// RunProfileSelect는 프로필 선택 UI를 표시하고 선택된 식별자를 반환한다.
	RunProfileSelect(choices []Choice) (string, error)
	// RunIdentifierInput은 새 프로필 식별자를 입력받는다.
	RunIdentifierInput(existing []string) (string, error)
	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunProfileSelect는 프로필 선택 UI를 표시한다.
func (h *HuhFormRunner) RunProfileSelect(choices []Choice) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("prompt.RunProfileSelect: %w", store.ErrProfileNotFound)
	}

	var selected string
	options := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		label := c.Label
		if c.Active {
			label += " (활성)"
		}
		options[i] = huh.NewOption(label, c.ID).Selected(c.Active)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("누가 플레이하나요?").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt.RunProfileSelect: %w", wrapAbort(err))
	}
	return selected, nil
}

// RunIdentifierInput은 프로필 식별자 입력 폼을 실행한다.
func (h *HuhFormRunner) RunIdentifierInput(existing []string) (string, error) {
	var id string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("프로필 이름").
			Description("cookies_<이름> 파일로 저장됩니다").
			Value(&id).
			Validate(IdentifierValidator(existing)),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt.RunIdentifierInput: %w", wrapAbort(err))
	}
	return id, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt.RunConfirm: %w", wrapAbort(err))
	}
	return confirm, nil
}

// IdentifierValidator는 새 식별자 입력값 검증 함수를 만든다.
func IdentifierValidator(existing []string) func(string) error {
	return func(s string) error {
		if err := store.ValidateID(s); err != nil {
			return err
		}
		if slices.Contains(existing, s) {
			return fmt.Errorf("이미 존재하는 프로필 이름입니다: %s", s)
		}
		return nil
	}
}

func wrapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
