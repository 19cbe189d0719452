package mail

import "context"

// StubSender records sent emails for tests. An optional Err makes every Send
// fail, mimicking an SMTP rejection.
type StubSender struct {
	Sent []Email
	Err  error
}

func NewStubSender() *StubSender {
	return &StubSender{}
}

func (s *StubSender) Send(_ context.Context, email Email) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, email)
	return nil
}

func (s *StubSender) Cleanup() {
	s.Sent = nil
	s.Err = nil
}
