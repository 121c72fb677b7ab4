package forms

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/entity/paymentaccount"
	"max.ks1230/trade-test-tools/internal/logger"
)

const (
	F2FFormFile = "f2f-acct.json"
	indent      = "  "
	filePerm    = 0o644
)

type config interface {
	OutputDir() string
}

type Writer struct {
	dir string
}

// NewWriter writes into the configured directory, or next to the running binary when none is set.
func NewWriter(config config) (*Writer, error) {
	dir := config.OutputDir()
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, errors.Wrap(err, "locating executable")
		}
		dir = filepath.Dir(exe)
	}
	return &Writer{dir: dir}, nil
}

// WriteF2FForm overwrites f2f-acct.json with a fresh form. The write is not atomic.
func (w *Writer) WriteF2FForm(countryCode string) (string, error) {
	form := paymentaccount.NewF2FForm(countryCode)

	data, err := encode(form)
	if err != nil {
		return "", errors.Wrap(err, "encoding form")
	}

	path := filepath.Join(w.dir, F2FFormFile)
	err = os.WriteFile(path, data, filePerm)
	if err != nil {
		return "", errors.Wrap(err, "writing form")
	}

	logger.Info("payment account form saved",
		zap.String("path", path),
		zap.String("paymentMethodId", form.PaymentMethodID),
		zap.String("country", form.Country),
	)
	return path, nil
}

// encode keeps '<', '>' and '&' literal; Encode appends the trailing newline.
func encode(form paymentaccount.Form) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(form); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
