package auth_test

import (
	"saarthi/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

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

type MockPoliceRepo struct {
	mock.Mock
}

func (m *MockPoliceRepo) GetByID(id string) (*models.PoliceOfficer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PoliceOfficer), args.Error(1)
}

func (m *MockPoliceRepo) GetByEmail(email string) (*models.PoliceOfficer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PoliceOfficer), args.Error(1)
}

func (m *MockPoliceRepo) Create(officer *models.PoliceOfficer) error {
	args := m.Called(officer)
	return args.Error(0)
}

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

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, body string) (string, error) {
	args := m.Called(to, body)
	return args.String(0), args.Error(1)
}
