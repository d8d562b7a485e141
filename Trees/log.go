package Trees

import "github.com/sirupsen/logrus"

// Log receives entries describing structural changes. Entries are at debug
// level, so nothing is written unless Log.SetLevel(logrus.DebugLevel) is called.
var Log = logrus.New()

func logging() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}

// logOp only allocates entries when called, so guard calls with logging().
func logOp(op string, v any, sz int, err error) {
	entry := Log.WithFields(logrus.Fields{"op": op, "value": v, "size": sz})
	if err != nil {
		entry.WithError(err).Debug("rejected")
	} else {
		entry.Debug("done")
	}
}
