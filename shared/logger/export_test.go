package logger

import (
	"io"
	"mallbook/config"
)

func ConfigureTo(cfg *config.Config, out io.Writer) {
	configure(cfg, out)
}
