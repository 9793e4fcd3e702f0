package main

import (
	"github.com/pkg/errors"

	"github.com/oleg578/linecsv"
	"github.com/oleg578/linecsv/internal/confengine"
	"github.com/oleg578/linecsv/internal/logger"
)

// config is the layout of the optional --config file.
//
//	logger:
//	  level: debug
//	  filename: /var/log/linecsv.log
//	parser:
//	  strictQuoteNewline: false
//	  fieldsPerRecord: -1
//	  continueOnError: true
type config struct {
	Logger logger.Options `config:"logger"`
	Parser parserConfig   `config:"parser"`
}

type parserConfig struct {
	StrictQuoteNewline bool `config:"strictQuoteNewline"`
	FieldsPerRecord    int  `config:"fieldsPerRecord"`
	ContinueOnError    bool `config:"continueOnError"`
}

func defaultConfig() config {
	return config{
		Logger: logger.Options{Level: string(logger.LevelInfo)},
		Parser: parserConfig{FieldsPerRecord: -1},
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	conf, err := confengine.LoadConfigPath(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read %s", path)
	}
	if err := conf.UnpackChild("logger", &cfg.Logger); err != nil {
		return cfg, errors.Wrap(err, "logger section")
	}
	if err := conf.UnpackChild("parser", &cfg.Parser); err != nil {
		return cfg, errors.Wrap(err, "parser section")
	}
	return cfg, nil
}

// configure applies p to r and returns r.
func (p parserConfig) configure(r *linecsv.Reader) *linecsv.Reader {
	r.FieldsPerRecord = p.FieldsPerRecord
	r.StrictQuoteNewline = p.StrictQuoteNewline
	return r
}
