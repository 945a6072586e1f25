package i

// Logger is the leveled logger components report through.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
