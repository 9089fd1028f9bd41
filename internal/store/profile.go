package store

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Profile은 저장소에서 발견된 하나의 백업 파일이다. 목록을 읽을 때마다 새로 만들어진다.
type Profile struct {
	// ID는 백업 파일 이름에서 접두사를 뗀 식별자다.
	ID string
	// Path는 백업 파일의 절대 경로다.
	Path string
}

func (p Profile) String() string {
	return p.ID
}

// DisplayName은 snake_case/kebab-case 식별자를 Title Case로 바꾼다 ("work_alt" → "Work Alt").
func (p Profile) DisplayName() string {
	words := strings.FieldsFunc(p.ID, func(r rune) bool {
		return r == '_' || r == '-' || unicode.IsSpace(r)
	})
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
