package logx

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface the rest of the module depends on.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

type Logx struct {
	sugar *zap.SugaredLogger
}

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// LevelByString maps a level name to a zap level, defaulting to info.
func LevelByString(lvl string) zapcore.Level {
	level, exist := levelMap[lvl]
	if !exist {
		return zapcore.InfoLevel
	}
	return level
}

// New builds a console logger writing to stderr at the given level.
func New(lvl zapcore.Level) *Logx {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(os.Stderr),
		zap.NewAtomicLevelAt(lvl),
	)
	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &Logx{sugar: logger.Sugar()}
}

// Nop returns a logger that discards everything. It is the default for
// library use and for tests.
func Nop() *Logx {
	return &Logx{sugar: zap.NewNop().Sugar()}
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}
