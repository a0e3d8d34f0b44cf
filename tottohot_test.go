package tottohot_test

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/pquerna/otp/totp"
	"github.com/toriato/tottohot"
)

const validToken = "token-for-tester"

var (
	testdata struct {
		Session struct {
			Login struct {
				Invalid        tottohot.Credentials `json:"invalid"`
				InvalidTOTPKey tottohot.Credentials `json:"invalidTOTPKey"`
				Valid          struct {
					tottohot.Credentials
					Nickname string `json:"nickname"`
				} `json:"valid"`
				ValidTOTP struct {
					tottohot.Credentials
					Nickname string `json:"nickname"`
				} `json:"validTOTPKey"`
			} `json:"login"`
		} `json:"session"`

		Board struct {
			Key   string          `json:"key"`
			Posts json.RawMessage `json:"posts"`
		} `json:"board"`

		Comments struct {
			PostID string          `json:"postID"`
			Items  json.RawMessage `json:"items"`
		} `json:"comments"`
	}
)

func TestMain(m *testing.M) {
	raw, err := os.ReadFile("testdata/testdata.json")
	if err != nil {
		log.Fatal(err)
	}

	if err := json.Unmarshal(raw, &testdata); err != nil {
		log.Fatal(err)
	}

	code := m.Run()
	os.Exit(code)
}

// fakeAPI 는 테스트용 REST 백엔드입니다
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

func (api *fakeAPI) last() *http.Request {
	api.mu.Lock()
	defer api.mu.Unlock()

	if len(api.requests) == 0 {
		return nil
	}
	return api.requests[len(api.requests)-1]
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	login := testdata.Session.Login

	users := map[string]string{
		login.Valid.Username:     `{"id":7,"username":"tester","nickname":"토토러","level":3,"points":1200,"roles":["verified"]}`,
		login.ValidTOTP.Username: `{"id":8,"username":"otp-tester","nickname":"오티피","roles":["admin"]}`,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || r.Method != http.MethodPost {
			writeJSON(w, http.StatusBadRequest, `{"message":"잘못된 요청"}`)
			return
		}

		user, ok := users[body["username"]]
		if !ok || body["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, `{"code":"INVALID_CREDENTIALS","message":"아이디 또는 비밀번호가 잘못되었습니다"}`)
			return
		}

		if body["username"] == login.ValidTOTP.Username && !totp.Validate(body["otpCode"], login.ValidTOTP.TOTPKey) {
			writeJSON(w, http.StatusUnauthorized, `{"code":"INVALID_OTP","message":"잘못된 코드입니다"}`)
			return
		}

		writeJSON(w, http.StatusOK, `{"token":"`+validToken+`","user":`+user+`}`)
	})

	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			writeJSON(w, http.StatusUnauthorized, `{"message":"토큰이 만료되었습니다"}`)
			return
		}
		writeJSON(w, http.StatusOK, users[login.Valid.Username])
	})

	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("boardKey") {
		case testdata.Board.Key:
			writeJSON(w, http.StatusOK, string(testdata.Board.Posts))
		case "admin-only":
			writeJSON(w, http.StatusForbidden, `{"message":"관리자 전용 게시판"}`)
		case "flood":
			writeJSON(w, http.StatusTooManyRequests, `{}`)
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			writeJSON(w, http.StatusOK, `{"posts":[],"pagination":{"count":0,"total":0,"totalPages":0}}`)
		}
	})

	mux.HandleFunc("/post-comments/post/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/post-comments/post/")
		if id != testdata.Comments.PostID {
			writeJSON(w, http.StatusNotFound, `{"message":"게시글이 없습니다"}`)
			return
		}
		writeJSON(w, http.StatusOK, string(testdata.Comments.Items))
	})

	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.requests = append(api.requests, r)
		api.mu.Unlock()

		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.Close)

	return api
}
