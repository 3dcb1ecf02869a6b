package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log logger estruturado global da aplicação.
var Log *zap.Logger

// SLog versão "sugared" do logger global, para mensagens formatadas.
var SLog *zap.SugaredLogger

// Até InitLogger rodar (e em testes de outros pacotes) os globais apontam
// para um logger inerte, nunca para nil.
func init() {
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// InitLogger inicializa os loggers globais. Deve ser chamado uma única vez,
// no início do main, antes de qualquer outro pacote usar Log/SLog.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Sem logger não há como continuar.
		panic("logger não pôde ser inicializado: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger descarrega buffers pendentes. Chamar via defer no main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
