package notification

import (
	"fmt"

	"saarthi/config"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioSender delivers SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSender builds a sender from the loaded configuration. Returns nil
// when Twilio is not configured, which callers treat as development mode.
func NewTwilioSender() *TwilioSender {
	if !config.TwilioConfigured() {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.AppConfig.TwilioAccountSID,
		Password: config.AppConfig.TwilioAuthToken,
	})
	return &TwilioSender{client: client, from: config.AppConfig.TwilioPhoneNumber}
}

// Send delivers a message body and returns the provider SID.
func (t *TwilioSender) Send(to, body string) (string, error) {
	params := &api.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio send failed: %w", err)
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}
