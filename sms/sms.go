package sms

// Sender dispatches a text message. Delivery is fire-and-forget: no
// callback or delivery receipt is ever consumed.
type Sender interface {
	Send(from, to, body string) error
}
