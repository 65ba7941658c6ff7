package ui

import "github.com/creditwise/creditwise-cli/internal/domain"

type loginDoneMsg struct {
	session domain.Session
	err     error
}

type registerDoneMsg struct {
	confirmation string
	err          error
}

type logoutDoneMsg struct {
	err error
}

type scoreFetchedMsg struct {
	result domain.ScoreResult
	err    error
}

type scoreCalculatedMsg struct {
	result domain.ScoreResult
	err    error
}

type chatAnsweredMsg struct {
	turns []domain.Turn
}
