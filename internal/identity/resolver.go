package identity

import (
	"errors"
	"strings"

	"weyouth/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// 로그인 실패 사유
var (
	ErrEmptyName       = errors.New("성함을 입력해주세요")
	ErrInvalidPassword = errors.New("비밀번호가 틀렸습니다")
	ErrInvalidRole     = errors.New("올바르지 않은 신분입니다")
)

// 명단에 없는 학생의 기본 학년
const DefaultStudentGrade = 10

// Identity 로그인으로 확정된 세션 사용자
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Grade *int   `json:"grade,omitempty"`
}

// ResolveLogin 이름과 선택한 신분으로 세션 사용자를 확정한다.
// 명단에 등록된 이름이면 관리자가 지정한 신분이 선택한 버튼보다 우선한다.
func ResolveLogin(name, password, intendedRole string, roster []models.Member, sharedPasswordHash []byte) (Identity, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Identity{}, ErrEmptyName
	}

	if intendedRole != "student" && intendedRole != "teacher" {
		return Identity{}, ErrInvalidRole
	}

	// 공용 비밀번호 체크
	if bcrypt.CompareHashAndPassword(sharedPasswordHash, []byte(password)) != nil {
		return Identity{}, ErrInvalidPassword
	}

	// 명단 대조 (공백 제거 후 정확히 일치해야 함)
	for _, m := range roster {
		if m.Name == trimmed {
			return Identity{
				ID:    newSessionID(m.Role),
				Name:  trimmed,
				Role:  m.Role,
				Grade: m.Grade,
			}, nil
		}
	}

	// 명단에 없으면 선택한 신분으로 로그인
	id := Identity{ID: newSessionID(intendedRole), Name: trimmed, Role: intendedRole}
	if intendedRole == "student" {
		grade := DefaultStudentGrade
		id.Grade = &grade
	}
	return id, nil
}

// Reconcile 세션 중 명단의 신분이 바뀌었으면 갱신된 Identity와 true를 반환한다.
// 인증 미들웨어가 요청마다 호출하므로 재로그인 없이 즉시 반영된다.
func Reconcile(current Identity, roster []models.Member) (Identity, bool) {
	for _, m := range roster {
		if m.Name == current.Name && m.Role != current.Role {
			current.Role = m.Role
			return current, true
		}
	}
	return current, false
}

// newSessionID 로그인마다 새로 생성되는 세션 ID (신분 이니셜 + uuid)
func newSessionID(role string) string {
	return role[:1] + "_" + uuid.NewString()
}
