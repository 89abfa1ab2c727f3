package auth

import (
	"context"
	"fmt"
	"time"

	"saarthi/models"
	"saarthi/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// testOTPCode is the fixed development fallback accepted only when the
// service runs with AllowTestOTP.
const testOTPCode = "123456"

// SendOTP issues a fresh code for the phone and dispatches it by SMS when a
// transport is configured. Dispatch failure degrades to returning the code in
// the response; it never fails the endpoint.
func (s *DefaultAuthService) SendOTP(ctx context.Context, phone string) (*OTPDispatchResponse, error) {
	if phone == "" {
		return nil, ValidationError{Msg: "Phone number is required"}
	}
	formatted := utils.NormalizePhone(phone)
	if !utils.IsValidPhone(formatted) {
		return nil, ValidationError{Msg: "Invalid phone number format"}
	}

	victim, err := s.Victims.GetByPhone(formatted)
	if err != nil {
		return nil, err
	}
	preRegistered, err := s.PreRegistered.GetByPhone(formatted)
	if err != nil {
		return nil, err
	}

	code, err := s.OTP.Issue(ctx, formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to issue OTP: %w", err)
	}

	resp := &OTPDispatchResponse{
		Exists:        victim != nil,
		PreRegistered: preRegistered != nil,
	}
	if preRegistered != nil {
		resp.PreRegisteredData = s.preRegisteredData(preRegistered, formatted)
	}

	if s.Sender == nil {
		resp.Message = "Development mode: Use the provided OTP"
		resp.MockOTP = code
		return resp, nil
	}

	message := fmt.Sprintf("Your SAARTHI verification code is: %s. Valid for 10 minutes.", code)
	if _, err := s.Sender.Send(formatted, message); err != nil {
		utils.GetLogger().Warn("SendOTP: SMS dispatch failed, exposing mock OTP",
			zap.String("phone", formatted), zap.Error(err))
		resp.Message = "Failed to send SMS. Using mock OTP for testing."
		resp.MockOTP = code
		return resp, nil
	}

	resp.Message = "OTP sent successfully"
	return resp, nil
}

func (s *DefaultAuthService) preRegisteredData(pre *models.PreRegisteredVictim, phone string) *PreRegisteredData {
	previews := []ComplaintPreview{}
	complaints, err := s.Complaints.GetByPhone(phone)
	if err != nil {
		utils.GetLogger().Warn("SendOTP: failed to load complaint previews", zap.Error(err))
	}
	for _, c := range complaints {
		previews = append(previews, ComplaintPreview{ID: c.ID, Text: c.Text, Status: c.Status})
	}
	return &PreRegisteredData{
		Name:       pre.Name,
		Address:    pre.Address,
		Complaints: previews,
	}
}

// VerifyOTP checks the code and resolves the phone to a verified victim
// account, creating or promoting records as needed, then issues a token.
func (s *DefaultAuthService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VictimSession, error) {
	if req.Phone == "" || req.Code == "" {
		return nil, ValidationError{Msg: "Phone and verification code are required"}
	}
	formatted := utils.NormalizePhone(req.Phone)

	if err := s.OTP.Verify(ctx, formatted, req.Code); err != nil {
		if !(s.AllowTestOTP && req.Code == testOTPCode) {
			return nil, UnauthorizedError{Msg: err.Error()}
		}
		utils.GetLogger().Warn("VerifyOTP: accepted test fallback OTP", zap.String("phone", formatted))
	}

	victim, err := s.resolveVictim(formatted, req)
	if err != nil {
		return nil, err
	}

	principal := models.Principal{ID: victim.ID, Role: models.RoleVictim, Name: victim.Name}
	token, err := utils.GenerateToken(principal)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	// Match by id OR phone so complaints not yet relinked after a promotion
	// still show up.
	complaints, err := s.Complaints.GetByComplainantOrPhone(victim.ID, formatted)
	if err != nil {
		utils.GetLogger().Warn("VerifyOTP: failed to load complaints", zap.Error(err))
	}
	if complaints == nil {
		complaints = []models.Complaint{}
	}

	return &VictimSession{
		Message: "Verification successful",
		Token:   token,
		User: VictimAccount{
			ID:            victim.ID,
			Name:          victim.Name,
			Role:          models.RoleVictim,
			Phone:         victim.Phone,
			Address:       victim.Address,
			IDProof:       victim.IDProof,
			Verified:      true,
			PreRegistered: victim.PreRegistered,
			Complaints:    complaints,
		},
	}, nil
}

// resolveVictim finds or creates the victim account for a verified phone:
// an existing victim is marked verified, a pre-registration is promoted, and
// an unknown phone becomes a fresh signup (name required).
func (s *DefaultAuthService) resolveVictim(phone string, req VerifyOTPRequest) (*models.Victim, error) {
	victim, err := s.Victims.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if victim != nil {
		set := bson.M{"verified": true}
		for k, v := range req.AdditionalInfo {
			set["additional_info."+k] = v
		}
		if err := s.Victims.Update(victim.ID, bson.M{"$set": set}); err != nil {
			return nil, err
		}
		victim.Verified = true
		return victim, nil
	}

	preRegistered, err := s.PreRegistered.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if preRegistered != nil {
		return s.promote(preRegistered, phone, req.AdditionalInfo)
	}

	if req.Name == "" {
		return nil, ValidationError{Msg: "Name is required for new users"}
	}
	if !utils.ValidIdentityName(req.Name) {
		return nil, ValidationError{Msg: "Name must not contain the ':' character"}
	}

	victim = &models.Victim{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Phone:          phone,
		Role:           models.RoleVictim,
		Verified:       true,
		AdditionalInfo: req.AdditionalInfo,
	}
	if err := s.Victims.Create(victim); err != nil {
		return nil, err
	}
	return victim, nil
}

// promote converts a pre-registration into a verified victim account and
// relinks complaints previously keyed by the phone number. The relink is
// best-effort with no compensating rollback; the pre-registration is retained
// for audit with a promotion stamp.
func (s *DefaultAuthService) promote(pre *models.PreRegisteredVictim, phone string, additionalInfo map[string]interface{}) (*models.Victim, error) {
	preRegisteredAt := pre.CreatedAt
	victim := &models.Victim{
		ID:              uuid.New().String(),
		Name:            pre.Name,
		Phone:           phone,
		Role:            models.RoleVictim,
		Address:         pre.Address,
		IDProof:         pre.IDProof,
		Verified:        true,
		PreRegistered:   true,
		PreRegisteredBy: pre.RegisteredBy,
		PreRegisteredAt: &preRegisteredAt,
		AdditionalInfo:  additionalInfo,
	}
	if err := s.Victims.Create(victim); err != nil {
		return nil, err
	}

	if _, err := s.Complaints.RelinkByPhone(phone, victim.ID); err != nil {
		utils.GetLogger().Warn("promote: failed to relink complaints",
			zap.String("phone", phone), zap.Error(err))
	}

	now := time.Now()
	if err := s.PreRegistered.Update(pre.ID, bson.M{"$set": bson.M{"promoted_at": now}}); err != nil {
		utils.GetLogger().Warn("promote: failed to stamp pre-registration", zap.Error(err))
	}

	return victim, nil
}

// PoliceLogin authenticates an officer by email and password. The failure
// message is identical for unknown emails and wrong passwords to avoid user
// enumeration.
func (s *DefaultAuthService) PoliceLogin(ctx context.Context, email, password string) (*OfficerSession, error) {
	if email == "" || password == "" {
		return nil, ValidationError{Msg: "Email and password are required"}
	}

	officer, err := s.Police.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("PoliceLogin: failed to fetch officer", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if officer == nil {
		return nil, UnauthorizedError{Msg: "Invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(officer.PasswordHash), []byte(password)); err != nil {
		return nil, UnauthorizedError{Msg: "Invalid email or password"}
	}

	principal := models.Principal{ID: officer.ID, Role: models.RolePolice, Name: officer.Name}
	token, err := utils.GenerateToken(principal)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &OfficerSession{Token: token, User: *officer}, nil
}

// PoliceRegister creates a new officer account and issues a token.
func (s *DefaultAuthService) PoliceRegister(ctx context.Context, name, email, password string) (*OfficerSession, error) {
	if name == "" || email == "" || password == "" {
		return nil, ValidationError{Msg: "Name, email and password are required"}
	}
	if !utils.ValidIdentityName(name) {
		return nil, ValidationError{Msg: "Name must not contain the ':' character"}
	}

	existing, err := s.Police.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ConflictError{Msg: "Email already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	officer := &models.PoliceOfficer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RolePolice,
	}
	if err := s.Police.Create(officer); err != nil {
		return nil, err
	}

	principal := models.Principal{ID: officer.ID, Role: models.RolePolice, Name: officer.Name}
	token, err := utils.GenerateToken(principal)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &OfficerSession{Message: "Registration successful", Token: token, User: *officer}, nil
}

// RegisterVictim upserts a pre-registered victim record on behalf of a police
// officer. An already-verified victim is an informational no-op.
func (s *DefaultAuthService) RegisterVictim(ctx context.Context, principal models.Principal, req RegisterVictimRequest) (*RegisterVictimResponse, error) {
	if !principal.IsPolice() {
		return nil, ForbiddenError{Msg: "Unauthorized access"}
	}
	if req.Name == "" || req.Phone == "" {
		return nil, ValidationError{Msg: "Name and phone number are required"}
	}
	if !utils.ValidIdentityName(req.Name) {
		return nil, ValidationError{Msg: "Name must not contain the ':' character"}
	}

	phone := utils.NormalizePhone(req.Phone)
	if !utils.IsValidPhone(phone) {
		return nil, ValidationError{Msg: "Invalid phone number format"}
	}

	existing, err := s.Victims.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RegisterVictimResponse{
			Message:           "Victim already registered",
			AlreadyRegistered: true,
			Victim: VictimRef{
				ID:    existing.ID,
				Name:  existing.Name,
				Phone: existing.Phone,
			},
		}, nil
	}

	officer := &models.RegisteredBy{ID: principal.ID, Name: principal.Name}

	preRegistered, err := s.PreRegistered.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if preRegistered != nil {
		now := time.Now()
		update := bson.M{"$set": bson.M{
			"name":       req.Name,
			"address":    req.Address,
			"id_proof":   req.IDProof,
			"updated_at": now,
			"updated_by": officer,
		}}
		if err := s.PreRegistered.Update(preRegistered.ID, update); err != nil {
			return nil, err
		}
		preRegistered.Name = req.Name
		preRegistered.Address = req.Address
		preRegistered.IDProof = req.IDProof
	} else {
		preRegistered = &models.PreRegisteredVictim{
			ID:           uuid.New().String(),
			Name:         req.Name,
			Phone:        phone,
			Address:      req.Address,
			IDProof:      req.IDProof,
			RegisteredBy: officer,
		}
		if err := s.PreRegistered.Create(preRegistered); err != nil {
			return nil, err
		}
	}

	return &RegisterVictimResponse{
		Message: "Victim pre-registered successfully",
		Victim: VictimRef{
			ID:      preRegistered.ID,
			Name:    preRegistered.Name,
			Phone:   preRegistered.Phone,
			Address: preRegistered.Address,
			IDProof: preRegistered.IDProof,
		},
	}, nil
}
