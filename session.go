package tottohot

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

// Session 은 API 클라이언트와 로그인 상태를 한 곳에서 관리합니다.
// 로그인 상태는 Login, Logout, Set 으로만 바뀝니다
type Session struct {
	Client      *resty.Client
	Credentials *Credentials
	User        *User

	token  string
	logger *zap.Logger
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	TOTPKey  string `json:"totpKey"`
}

var (
	ErrUnauthorized       = errors.New("로그인이 필요합니다")
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 잘못됐습니다")
	ErrInvalidTOTP        = errors.New("OTP 코드가 잘못됐습니다")

	statusErrors = map[int]error{
		http.StatusUnauthorized:    ErrUnauthorized,
		http.StatusForbidden:       ErrForbidden,
		http.StatusNotFound:        ErrNotFound,
		http.StatusTooManyRequests: ErrRateLimited,
	}

	codeErrors = map[string]error{
		"INVALID_CREDENTIALS": ErrInvalidCredentials,
		"INVALID_OTP":         ErrInvalidTOTP,
	}
)

// apiError 는 서버가 실패 응답에 담아 보내는 본문입니다
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewSession(baseURL string) *Session {
	session := &Session{
		logger: zap.NewNop(),
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	client.SetTimeout(15 * time.Second)
	client.OnAfterResponse(func(_ *resty.Client, r *resty.Response) error {
		session.logger.Debug("응답을 받았습니다",
			zap.String("method", r.Request.Method),
			zap.String("url", r.Request.URL),
			zap.Int("status", r.StatusCode()),
			zap.Duration("elapsed", r.Time()),
		)

		if !r.IsError() {
			return nil
		}

		// 실패 응답 본문에 담긴 사유 파싱하기
		var body apiError
		if strings.Contains(r.Header().Get("Content-Type"), "json") {
			_ = json.Unmarshal(r.Body(), &body)
		}

		err, ok := codeErrors[body.Code]
		if !ok {
			err, ok = statusErrors[r.StatusCode()]
		}
		if !ok {
			err = errors.WithMessagef(ErrUnexpected, "서버가 %d 상태 코드를 반환했습니다", r.StatusCode())
		}

		if body.Message != "" {
			return errors.WithMessage(err, body.Message)
		}
		return err
	})

	session.Client = client

	return session
}

// SetLogger 메소드는 세션과 HTTP 클라이언트가 사용할 로거를 지정합니다
func (session *Session) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}

	session.logger = logger
	session.Client.SetLogger(logger.Sugar())
}

// Login 메소드는 제공된 인증 정보를 통해 로그인하고 발급받은 토큰을 저장합니다
func (session *Session) Login(credentials *Credentials) error {
	if credentials != nil {
		session.Credentials = credentials
	}

	if session.Credentials == nil {
		return ErrInvalidCredentials
	}

	payload := map[string]string{
		"username": session.Credentials.Username,
		"password": session.Credentials.Password,
	}

	// OTP 키가 있다면 현재 시각의 코드 함께 보내기
	if session.Credentials.TOTPKey != "" {
		code, err := totp.GenerateCode(session.Credentials.TOTPKey, time.Now())
		if err != nil {
			return errors.WithMessage(err, "OTP 코드 생성 중 오류가 발생했습니다")
		}

		payload["otpCode"] = code
	}

	var result struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}

	_, err := session.Client.R().
		SetBody(payload).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return errors.WithMessage(err, "로그인 요청 중 오류가 발생했습니다")
	}

	if result.Token == "" {
		return errors.WithMessage(ErrUnexpected, "로그인 후 서버가 토큰을 반환하지 않았습니다")
	}

	session.setToken(result.Token)
	session.logger.Info("로그인했습니다", zap.String("username", session.Credentials.Username))

	// 응답에 사용자 정보가 없다면 새로 불러오기
	if result.User == nil {
		return session.Update()
	}

	result.User.applyRoles()
	session.User = result.User

	return nil
}

// Logout 메소드는 저장된 토큰과 사용자 정보를 지웁니다
func (session *Session) Logout() {
	session.setToken("")
	session.User = nil
}

// LoggedIn 메소드는 토큰과 사용자 정보가 모두 있는지 확인합니다
func (session Session) LoggedIn() bool {
	return session.token != "" && session.User != nil
}

// Update 메소드는 현재 토큰으로 사용자 정보를 서버에서 새로 가져옵니다
func (session *Session) Update() error {
	if session.token == "" {
		session.User = nil
		return ErrUnauthorized
	}

	user := &User{}

	_, err := session.Client.R().
		SetResult(user).
		Get("/auth/me")
	if err != nil {
		session.User = nil
		return errors.WithMessage(err, "사용자 정보 요청 중 오류가 발생했습니다")
	}

	// 응답에 닉네임이 없다면 로그인된 상태가 아닌 것으로 판단하기
	if user.Nickname == "" {
		session.User = nil
		return ErrUnauthorized
	}

	user.applyRoles()
	session.User = user

	return nil
}

// Get 메소드는 현재 사용 중인 토큰을 반환합니다
func (session Session) Get() string {
	return session.token
}

// Set 메소드는 사용할 토큰을 지정하고 사용자 정보를 새로 불러옵니다
func (session *Session) Set(token string) error {
	session.setToken(token)
	return session.Update()
}

func (session *Session) setToken(token string) {
	session.token = token
	session.Client.SetAuthToken(token)
}
