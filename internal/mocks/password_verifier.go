package mocks

import "github.com/stretchr/testify/mock"

// MockPasswordVerifier is a testify mock of auth.PasswordVerifier.
type MockPasswordVerifier struct {
	mock.Mock
}

// Compare mocks auth.PasswordVerifier.Compare.
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	return m.Called(hashedPassword, password).Error(0)
}
