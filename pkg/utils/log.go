package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Output and level are configured by
// bootstrap after the config is loaded.
var Log = logrus.New()
