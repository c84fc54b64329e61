package logger

import (
	"log"
	"os"
)

// Logger é a interface de logging usada pelos controllers e repositórios
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// StdLogger escreve logs estruturados (chave/valor) na saída padrão
type StdLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	return &StdLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", flags),
		errorLogger: log.New(os.Stderr, "ERROR: ", flags),
		debugLogger: log.New(os.Stdout, "DEBUG: ", flags),
		warnLogger:  log.New(os.Stdout, "WARN: ", flags),
	}
}

// Info registra uma mensagem de informação
func (l *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Printf(msg+" %v", keysAndValues...)
}

// Error registra uma mensagem de erro
func (l *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Printf(msg+" %v", keysAndValues...)
}

// Debug registra uma mensagem de debug
func (l *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Printf(msg+" %v", keysAndValues...)
}

// Warn registra uma mensagem de aviso
func (l *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Printf(msg+" %v", keysAndValues...)
}
