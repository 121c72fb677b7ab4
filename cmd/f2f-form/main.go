package main

import (
	"os"

	"go.uber.org/zap"

	"max.ks1230/trade-test-tools/internal/commands"
	"max.ks1230/trade-test-tools/internal/config"
	"max.ks1230/trade-test-tools/internal/logger"
	"max.ks1230/trade-test-tools/internal/model/forms"
)

func main() {
	code, err := commands.Form(os.Args[1:], os.Stdout, newWriter)
	if err != nil {
		logger.Fatal("failed to write payment account form", zap.Error(err))
	}

	logger.Sync()
	os.Exit(code)
}

func newWriter() (commands.FormWriter, error) {
	conf, err := config.New()
	if err != nil {
		return nil, err
	}
	return forms.NewWriter(conf.Form())
}
