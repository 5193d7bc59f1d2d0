package server

import (
	"fmt"

	"fixcheck/internal/domain"
	"fixcheck/internal/presenter"
	"fixcheck/internal/query"
)

// toggleMessage is sent by the page when an operator clicks a checkbox
type toggleMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// updateMessage carries the re-rendered case back to the page
type updateMessage struct {
	ID       string `json:"id"`
	HTML     string `json:"html,omitempty"`
	Complete bool   `json:"complete"`
	Error    string `json:"error,omitempty"`
}

// buildPresenters mounts every case of a fixture against one target snapshot
func buildPresenters(fixture domain.Fixture, target query.Target, links presenter.Links) ([]*presenter.TestCase, error) {
	cases := make([]*presenter.TestCase, 0, len(fixture.Cases))
	for i, tc := range fixture.Cases {
		p, err := presenter.New(fixture.CaseID(i), tc, target, links)
		if err != nil {
			return nil, err
		}
		cases = append(cases, p)
	}
	return cases, nil
}

// Session is the mounted state of one open fixture page. It is owned by a
// single connection goroutine, so events apply in the order they arrive.
type Session struct {
	fixture domain.Fixture
	target  query.Target
	cases   map[string]*presenter.TestCase
}

// NewSession mounts a fixture for one connection
func NewSession(fixture domain.Fixture, target query.Target, links presenter.Links) (*Session, error) {
	presenters, err := buildPresenters(fixture, target, links)
	if err != nil {
		return nil, err
	}
	cases := make(map[string]*presenter.TestCase, len(presenters))
	for _, p := range presenters {
		cases[p.ID()] = p
	}
	return &Session{fixture: fixture, target: target, cases: cases}, nil
}

// Handle applies one message and returns the update to send back
func (s *Session) Handle(msg toggleMessage) (updateMessage, error) {
	if msg.Type != "toggle" {
		return updateMessage{ID: msg.ID, Error: "unknown message type"}, fmt.Errorf("unknown message type %q", msg.Type)
	}
	p, ok := s.cases[msg.ID]
	if !ok {
		return updateMessage{ID: msg.ID, Error: "unknown test case"}, fmt.Errorf("unknown test case %q", msg.ID)
	}

	complete := p.Toggle()
	out, err := presenter.RenderString(p.Render())
	if err != nil {
		return updateMessage{ID: msg.ID, Error: "render failed"}, fmt.Errorf("render %s: %w", msg.ID, err)
	}
	return updateMessage{ID: msg.ID, HTML: out, Complete: complete}, nil
}
