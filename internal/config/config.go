// Package config 는 명령줄 도구의 설정을 불러옵니다.
// 우선순위는 명령줄 플래그, TOTTOHOT_ 환경 변수, tottohot.yaml 설정 파일, 기본값 순입니다
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL     string  `mapstructure:"base_url"`
	Username    string  `mapstructure:"username"`
	Password    string  `mapstructure:"password"`
	TOTPKey     string  `mapstructure:"totp_key"`
	Board       string  `mapstructure:"board"`
	Page        int     `mapstructure:"page"`
	Limit       int     `mapstructure:"limit"`
	RadarRadius float64 `mapstructure:"radar_radius"`
	Debug       bool    `mapstructure:"debug"`
}

var ErrMissingBaseURL = errors.New("API 주소(base_url)가 설정되지 않았습니다")

var defaults = map[string]interface{}{
	"base_url":     "",
	"username":     "",
	"password":     "",
	"totp_key":     "",
	"board":        "free-board",
	"page":         1,
	"limit":        20,
	"radar_radius": 100.0,
	"debug":        false,
}

// flagKeys 는 플래그 이름과 설정 키의 대응입니다
var flagKeys = map[string]string{
	"base-url":     "base_url",
	"username":     "username",
	"password":     "password",
	"totp-key":     "totp_key",
	"board":        "board",
	"page":         "page",
	"limit":        "limit",
	"radar-radius": "radar_radius",
	"debug":        "debug",
}

// Load 함수는 args 를 해석해 설정과 남은 위치 인자를 반환합니다
func Load(args []string) (*Config, []string, error) {
	fs := pflag.NewFlagSet("tottohot", pflag.ContinueOnError)
	fs.String("base-url", "", "API 주소")
	fs.String("username", "", "로그인 아이디")
	fs.String("password", "", "로그인 비밀번호")
	fs.String("totp-key", "", "OTP 비밀 키")
	fs.String("board", "", "게시판 키")
	fs.Int("page", 0, "페이지 번호")
	fs.Int("limit", 0, "페이지 크기")
	fs.Float64("radar-radius", 0, "레이더 차트 반지름")
	fs.Bool("debug", false, "디버그 로그 출력")
	configFile := fs.String("config", "", "설정 파일 경로")

	if err := fs.Parse(args); err != nil {
		return nil, nil, errors.WithMessage(err, "명령줄 인자 해석 중 오류가 발생했습니다")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 설정 파일은 없어도 됨
	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("tottohot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || *configFile != "" {
			return nil, nil, errors.WithMessage(err, "설정 파일을 읽는 중 오류가 발생했습니다")
		}
	}

	v.SetEnvPrefix("TOTTOHOT")
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, nil, errors.WithMessagef(err, "%s 플래그 연결 중 오류가 발생했습니다", name)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, errors.WithMessage(err, "설정 값 변환 중 오류가 발생했습니다")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

// Validate 메소드는 필수 값을 확인하고 잘못된 값을 기본값으로 되돌립니다
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if cfg.Page < 1 {
		cfg.Page = 1
	}
	if cfg.Limit < 1 {
		cfg.Limit = defaults["limit"].(int)
	}
	if cfg.RadarRadius <= 0 {
		cfg.RadarRadius = defaults["radar_radius"].(float64)
	}

	return nil
}
