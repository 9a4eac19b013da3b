// Copyright (C) 2024 The jsontree Authors. All Rights Reserved.

package jsontree

import "fmt"

// SyntaxError is the concrete type of errors reported for grammar
// violations. It records the byte offset in the input at which scanning
// stopped.
type SyntaxError struct {
	Offset  int
	Message string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Errorf constructs a *SyntaxError at the given offset with a formatted
// message.
func Errorf(offset int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(msg, args...)}
}
