package sms

import (
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender sends SMS through the Twilio REST API. Credentials are read
// from TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN by the client itself.
type TwilioSender struct {
	client *twilio.RestClient
}

func NewTwilioSender() *TwilioSender {
	return &TwilioSender{client: twilio.NewRestClient()}
}

func (s *TwilioSender) Send(from, to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(body)
	_, err := s.client.Api.CreateMessage(params)
	return err
}
