package complaint_test

import (
	"saarthi/models"
	"saarthi/services/notification"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type MockComplaintRepo struct {
	mock.Mock
}

func (m *MockComplaintRepo) GetByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) GetAll() ([]models.Complaint, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) GetByComplainant(complainantID string) ([]models.Complaint, error) {
	args := m.Called(complainantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) GetByComplainantOrPhone(complainantID, phone string) ([]models.Complaint, error) {
	args := m.Called(complainantID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) GetByPhone(phone string) ([]models.Complaint, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockComplaintRepo) Create(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockComplaintRepo) Update(id string, update bson.M) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockComplaintRepo) RelinkByPhone(phone, complainantID string) (int64, error) {
	args := m.Called(phone, complainantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockVictimRepo struct {
	mock.Mock
}

func (m *MockVictimRepo) GetByID(id string) (*models.Victim, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Victim), args.Error(1)
}

func (m *MockVictimRepo) GetByPhone(phone string) (*models.Victim, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Victim), args.Error(1)
}

func (m *MockVictimRepo) Create(victim *models.Victim) error {
	args := m.Called(victim)
	return args.Error(0)
}

func (m *MockVictimRepo) Update(id string, update bson.M) error {
	args := m.Called(id, update)
	return args.Error(0)
}

type MockPreRegisteredRepo struct {
	mock.Mock
}

func (m *MockPreRegisteredRepo) GetByID(id string) (*models.PreRegisteredVictim, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PreRegisteredVictim), args.Error(1)
}

func (m *MockPreRegisteredRepo) GetByPhone(phone string) (*models.PreRegisteredVictim, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PreRegisteredVictim), args.Error(1)
}

func (m *MockPreRegisteredRepo) Create(victim *models.PreRegisteredVictim) error {
	args := m.Called(victim)
	return args.Error(0)
}

func (m *MockPreRegisteredRepo) Update(id string, update bson.M) error {
	args := m.Called(id, update)
	return args.Error(0)
}

type MockCaseNoteRepo struct {
	mock.Mock
}

func (m *MockCaseNoteRepo) Create(note *models.CaseNote) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockCaseNoteRepo) GetByComplaint(complaintID string) ([]models.CaseNote, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaseNote), args.Error(1)
}

func (m *MockCaseNoteRepo) GetPublicByComplaint(complaintID string) ([]models.CaseNote, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CaseNote), args.Error(1)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Append(record *models.NotificationRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockNotificationRepo) GetByComplaint(complaintID string) ([]models.NotificationRecord, error) {
	args := m.Called(complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NotificationRecord), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(to, complaintID string, isCognizable *bool) notification.Outcome {
	args := m.Called(to, complaintID, isCognizable)
	return args.Get(0).(notification.Outcome)
}

func (m *MockNotifier) SendStatusUpdate(to, complaintID, status, details string) notification.Outcome {
	args := m.Called(to, complaintID, status, details)
	return args.Get(0).(notification.Outcome)
}
