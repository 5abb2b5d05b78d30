package v1

// Field is one structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// F builds a Field. Shorthand for log call sites.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the script logging namespace. Entries land in the host's script
// run log, tagged with the run id.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}
