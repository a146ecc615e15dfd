package logger

import (
	"flag"
)

// InitLogs routes glog output to stderr. glog registers its flags on the
// default FlagSet; callers that do not flag.Parse themselves still get
// sane logging.
func InitLogs() {
	flag.Set("logtostderr", "true")
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
}
