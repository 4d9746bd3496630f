// Package inquiry runs the client inquiry negotiation state machine.
//
// Valid transitions: RECEIVED -> QUOTED -> DONE, RECEIVED -> REJECTED, and
// any active state -> CUSTOMER_REJECTED. DONE, REJECTED and
// CUSTOMER_REJECTED are terminal. An inquiry lives in the active store
// exactly while it is in negotiation: reaching DONE removes it after one
// final notification.
package inquiry

import (
	stderrors "errors"

	"github.com/yanun0323/errors"

	"main/internal/flow"
	"main/internal/model"
	"main/internal/model/enum"
)

var ErrInvalidTransition = stderrors.New("invalid inquiry state transition")

// QuoteConnector receives a freshly ingested RECEIVED inquiry, attaches a
// quote and feeds it back as QUOTED.
type QuoteConnector interface {
	Publish(inq model.Inquiry) error
}

// Service stores inquiries under negotiation.
type Service struct {
	active *flow.Store[model.Inquiry]
	conn   QuoteConnector
}

func New() *Service {
	return &Service{
		active: flow.NewStore(func(i model.Inquiry) string { return i.InquiryID }),
	}
}

// SetConnector wires the quoting connector. Done after construction
// because the connector needs the service to feed quotes back into.
func (s *Service) SetConnector(conn QuoteConnector) {
	s.conn = conn
}

func (s *Service) AddListener(l flow.Listener[model.Inquiry]) {
	s.active.AddListener(l)
}

// Get returns an inquiry still in negotiation.
func (s *Service) Get(inquiryID string) (model.Inquiry, error) {
	return s.active.Get(inquiryID)
}

// Active returns the number of inquiries in negotiation.
func (s *Service) Active() int {
	return s.active.Len()
}

// OnMessage drives the state machine with an inbound inquiry event.
//
// A RECEIVED inquiry is stored and echoed to the quoting connector; the
// connector's QUOTED round-trip lands back here and completes the
// negotiation: the inquiry moves to DONE, listeners are notified exactly
// once, and the record leaves the active store.
//
// The stored record, not the inbound event, decides whether a transition
// is legal: an event targeting a terminal record is rejected, and a QUOTED
// event must land on a record still in negotiation.
func (s *Service) OnMessage(inq model.Inquiry) error {
	switch inq.State {
	case enum.InquiryReceived:
		if prev, err := s.active.Get(inq.InquiryID); err == nil && prev.State.IsTerminal() {
			return errors.Wrap(ErrInvalidTransition, prev.State.String())
		}
		s.active.Put(inq)
		if s.conn == nil {
			return nil
		}
		return s.conn.Publish(inq)

	case enum.InquiryQuoted:
		prev, err := s.active.Get(inq.InquiryID)
		if err != nil {
			return err
		}
		if prev.State.IsTerminal() {
			return errors.Wrap(ErrInvalidTransition, prev.State.String())
		}
		inq.State = enum.InquiryDone
		s.active.Put(inq)
		if err := s.active.Notify(inq); err != nil {
			return err
		}
		s.active.Remove(inq.InquiryID)
		return nil

	case enum.InquiryCustomerRejected:
		return s.CustomerReject(inq.InquiryID)

	default:
		return errors.Wrap(ErrInvalidTransition, inq.State.String())
	}
}

// SendQuote attaches a quote price to an active inquiry. The state does
// not advance; the price and the current state are applied as one update.
func (s *Service) SendQuote(inquiryID string, price model.Price) error {
	inq, err := s.active.Get(inquiryID)
	if err != nil {
		return err
	}
	inq.Price = price
	s.active.Put(inq)
	return nil
}

// Reject moves a non-terminal inquiry to REJECTED. The record stays
// stored; no notification is sent.
func (s *Service) Reject(inquiryID string) error {
	inq, err := s.active.Get(inquiryID)
	if err != nil {
		return err
	}
	if inq.State.IsTerminal() {
		return errors.Wrap(ErrInvalidTransition, inq.State.String())
	}
	inq.State = enum.InquiryRejected
	s.active.Put(inq)
	return nil
}

// CustomerReject marks an active inquiry CUSTOMER_REJECTED. The customer
// can walk away from any state, including one we already closed on our
// side.
func (s *Service) CustomerReject(inquiryID string) error {
	inq, err := s.active.Get(inquiryID)
	if err != nil {
		return err
	}
	inq.State = enum.InquiryCustomerRejected
	s.active.Put(inq)
	return nil
}

// IsNotFound reports whether err is a missing-inquiry lookup failure.
func IsNotFound(err error) bool {
	return stderrors.Is(err, flow.ErrNotFound)
}
