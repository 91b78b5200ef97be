package dto

import "errors"

// ExpenseSnapshot is the caller-supplied view of an expense used to build
// chat context. The chat endpoint never reads the store; the client sends
// its own snapshot.
type ExpenseSnapshot struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

type GoalSnapshot struct {
	Name string `json:"name"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message  string            `json:"message"`
	Expenses []ExpenseSnapshot `json:"expenses"`
	Goals    []GoalSnapshot    `json:"goals"`
	History  []ChatTurn        `json:"history"`
}

func (r *ChatRequest) Validate() error {
	if r.Message == "" {
		return errors.New("message is required")
	}
	return nil
}

type ChatResponse struct {
	Response string `json:"response"`
}

// ChatError is the failure envelope for the chat endpoint: a machine
// readable kind plus a user-facing message. Upstream details never appear
// here, only in logs.
type ChatError struct {
	ErrorKind string `json:"errorKind"`
	Message   string `json:"message"`
}
