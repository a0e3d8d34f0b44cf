package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/toriato/tottohot"
	"github.com/toriato/tottohot/internal/config"
)

const usage = `사용법:
  tottohot [플래그] list            게시판 목록 출력
  tottohot [플래그] review <글번호>  항목별 평점 요약 출력`

func main() {
	cfg, args, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, args, os.Stdout, logger); err != nil {
		logger.Error("명령 실행에 실패했습니다", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg *config.Config, args []string, w io.Writer, logger *zap.Logger) error {
	session := tottohot.NewSession(cfg.BaseURL)
	session.SetLogger(logger)

	if cfg.Username != "" {
		err := session.Login(&tottohot.Credentials{
			Username: cfg.Username,
			Password: cfg.Password,
			TOTPKey:  cfg.TOTPKey,
		})
		if err != nil {
			return err
		}
	}

	command := "list"
	if len(args) > 0 {
		command = args[0]
	}

	switch command {
	case "list":
		return list(session, cfg, w)
	case "review":
		if len(args) < 2 {
			return errors.New("글번호가 필요합니다")
		}
		return review(session, tottohot.ID(args[1]), cfg.RadarRadius, w)
	}

	return errors.Errorf("알 수 없는 명령입니다: %s", command)
}

func list(session *tottohot.Session, cfg *config.Config, w io.Writer) error {
	page, err := session.NewBoard(cfg.Board).Posts(cfg.Page, cfg.Limit)
	if err != nil {
		return err
	}

	for _, row := range page.Rows() {
		fmt.Fprintf(w, "%6s  %-10s  %s  %s\n", row.Number, row.Date, row.Stars, row.Post.Title)
	}

	fmt.Fprintf(w, "%d / %d 페이지 (전체 %d개)\n", page.Page, page.Pagination.TotalPages, page.Pagination.Total)

	return nil
}

func review(session *tottohot.Session, postID tottohot.ID, radius float64, w io.Writer) error {
	r, err := session.Review(postID, radius)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "평점 댓글 %d개 / 전체 %d개\n", r.Rated, len(r.Comments))

	for _, c := range tottohot.Categories {
		fmt.Fprintf(w, "%-6s %4s  %s\n", c, r.Ratings.Format(c), r.Stars[c])
	}

	fmt.Fprintf(w, "종합   %s\n", r.Overall)
	fmt.Fprintf(w, "shape: %s\n", r.Shape.Translate(radius, radius).SVGPoints())

	for _, g := range r.Grid {
		fmt.Fprintf(w, "grid:  %s\n", g.Translate(radius, radius).SVGPoints())
	}

	return nil
}
