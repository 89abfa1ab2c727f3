package auth

import (
	"context"

	complaintRepo "saarthi/database/repository/complaint"
	policeRepo "saarthi/database/repository/police"
	victimRepo "saarthi/database/repository/victim"
	"saarthi/models"
	"saarthi/services/notification"
	"saarthi/services/otp"
)

// ComplaintPreview is the reduced complaint projection returned alongside
// pre-registration data on OTP dispatch.
type ComplaintPreview struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

// PreRegisteredData describes an existing pre-registration to the caller of
// send-otp.
type PreRegisteredData struct {
	Name       string             `json:"name"`
	Address    string             `json:"address,omitempty"`
	Complaints []ComplaintPreview `json:"complaints"`
}

// OTPDispatchResponse is the result of a send-otp request. MockOTP is
// populated only when SMS delivery is unavailable; dispatch failure never
// fails the endpoint.
type OTPDispatchResponse struct {
	Message           string             `json:"message"`
	Exists            bool               `json:"exists"`
	PreRegistered     bool               `json:"pre_registered"`
	PreRegisteredData *PreRegisteredData `json:"pre_registered_data,omitempty"`
	MockOTP           string             `json:"mock_otp,omitempty"`
}

// VerifyOTPRequest carries the verify-otp input. Name is required only for
// first-time signups with no pre-registration.
type VerifyOTPRequest struct {
	Phone          string                 `json:"phone"`
	Code           string                 `json:"code"`
	Name           string                 `json:"name"`
	AdditionalInfo map[string]interface{} `json:"additional_info"`
}

// VictimAccount is the victim payload returned on successful verification.
type VictimAccount struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Role          string             `json:"role"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address,omitempty"`
	IDProof       string             `json:"id_proof,omitempty"`
	Verified      bool               `json:"verified"`
	PreRegistered bool               `json:"pre_registered"`
	Complaints    []models.Complaint `json:"complaints"`
}

// VictimSession is the token + user payload for a verified victim.
type VictimSession struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    VictimAccount `json:"user"`
}

// OfficerSession is the token + user payload for a police officer.
type OfficerSession struct {
	Message string               `json:"message,omitempty"`
	Token   string               `json:"token"`
	User    models.PoliceOfficer `json:"user"`
}

// VictimRef is the reduced victim payload in pre-registration responses.
type VictimRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
	IDProof string `json:"id_proof,omitempty"`
}

// RegisterVictimRequest carries the police pre-registration input.
type RegisterVictimRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	IDProof string `json:"id_proof"`
}

// RegisterVictimResponse reports the pre-registration result.
type RegisterVictimResponse struct {
	Message string    `json:"message"`
	Victim  VictimRef `json:"victim"`
	// AlreadyRegistered is set when the phone already belongs to a verified
	// victim and no pre-registration was written.
	AlreadyRegistered bool `json:"-"`
}

// AuthService issues tokens after OTP or password verification and manages
// victim and officer records.
type AuthService interface {
	SendOTP(ctx context.Context, phone string) (*OTPDispatchResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VictimSession, error)
	PoliceLogin(ctx context.Context, email, password string) (*OfficerSession, error)
	PoliceRegister(ctx context.Context, name, email, password string) (*OfficerSession, error)
	RegisterVictim(ctx context.Context, principal models.Principal, req RegisterVictimRequest) (*RegisterVictimResponse, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Victims       victimRepo.VictimRepository
	PreRegistered victimRepo.PreRegisteredRepository
	Police        policeRepo.PoliceRepository
	Complaints    complaintRepo.ComplaintRepository
	OTP           otp.Store
	Sender        notification.Sender
	// AllowTestOTP accepts the fixed development code. Configuration-gated,
	// never enabled in production.
	AllowTestOTP bool
}
