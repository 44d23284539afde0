package apperr_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	apperr.Handle(ctx, goerr.New("something failed"))
	gt.S(t, buf.String()).Contains("application error")
	gt.S(t, buf.String()).Contains("something failed")
}
