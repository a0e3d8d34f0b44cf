package tottohot

import "fmt"

const (
	Member        UserFlag = 1 << iota // 가입한 사용자
	Verified                           // 인증 회원
	Moderator                          // 게시판 관리자
	Administrator                      // 전역 관리자
)

type User struct {
	ID       ID       `json:"id"`
	Username string   `json:"username"`
	Nickname string   `json:"nickname"`
	Level    int      `json:"level"`
	Points   int64    `json:"points"`
	Roles    []string `json:"roles"`
	Flags    UserFlag `json:"-"`
}

type UserFlag int

func (f *UserFlag) Set(flag UserFlag)      { *f |= flag }
func (f *UserFlag) Clear(flag UserFlag)    { *f &^= flag }
func (f *UserFlag) Toggle(flag UserFlag)   { *f ^= flag }
func (f *UserFlag) Has(flag UserFlag) bool { return *f&flag != 0 }

// applyRoles 메소드는 서버가 내려준 역할 목록으로 플래그를 채웁니다
func (user *User) applyRoles() {
	user.Flags = Member

	for _, role := range user.Roles {
		switch role {
		case "verified":
			user.Flags.Set(Verified)
		case "moderator":
			user.Flags.Set(Moderator)
		case "admin":
			user.Flags.Set(Moderator)
			user.Flags.Set(Administrator)
		}
	}
}

func (user User) String() string {
	return fmt.Sprintf("%s(%s)", user.Nickname, user.Username)
}
