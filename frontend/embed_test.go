package frontend_test

import (
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/threatlens/frontend"
)

func TestGetHTTPFS(t *testing.T) {
	fs, err := frontend.GetHTTPFS()
	gt.NoError(t, err).Required()

	f, err := fs.Open("/index.html")
	gt.NoError(t, err).Required()
	defer f.Close()

	data, err := io.ReadAll(f)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains("/api/dashboard")
}
