package ron

import "fmt"

// SyntaxError reports a lexical or grammatical problem with its position.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// SchemaError reports well-formed input that does not match the target type.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema error: %s", e.Msg)
	}
	return fmt.Sprintf("schema error at %s: %s", e.Path, e.Msg)
}

// MergeError reports an irreconcilable conflict between two documents.
type MergeError struct {
	Path string
	Msg  string
}

func (e *MergeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("merge error: %s", e.Msg)
	}
	return fmt.Sprintf("merge error at %s: %s", e.Path, e.Msg)
}

func syntaxErrf(line, col int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

func schemaErrf(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Msg: fmt.Sprintf(format, args...)}
}
