package handlers

import (
	"context"

	"github.com/Akhona00/Guardian-Angel-website/models"
	"github.com/Akhona00/Guardian-Angel-website/services"
)

// mockStore implements the handler store interfaces for testing.
type mockStore struct {
	products    []models.Product
	productsErr error

	lines    []models.CartLine
	linesErr error

	addErr       error
	addedSession string
	addedProduct int
	addedQty     int

	setSession string
	setProduct int
	setQty     int
	setCalled  bool

	removeSession string
	removeProduct int
	removeCalled  bool

	insertedPayment *models.Payment
	insertErr       error

	clearedSession string
	clearErr       error

	payment    models.Payment
	paymentErr error

	insertedContact *models.Contact
	contactErr      error
}

func (m *mockStore) ListProducts(_ context.Context) ([]models.Product, error) {
	return m.products, m.productsErr
}

func (m *mockStore) AddCartItem(_ context.Context, sessionID string, productID, quantity int) error {
	m.addedSession = sessionID
	m.addedProduct = productID
	m.addedQty = quantity
	return m.addErr
}

func (m *mockStore) SetCartItemQuantity(_ context.Context, sessionID string, productID, quantity int) error {
	m.setCalled = true
	m.setSession = sessionID
	m.setProduct = productID
	m.setQty = quantity
	return nil
}

func (m *mockStore) RemoveCartItem(_ context.Context, sessionID string, productID int) error {
	m.removeCalled = true
	m.removeSession = sessionID
	m.removeProduct = productID
	return nil
}

func (m *mockStore) GetCartLines(_ context.Context, _ string) ([]models.CartLine, error) {
	return m.lines, m.linesErr
}

func (m *mockStore) InsertPayment(_ context.Context, payment models.Payment) (models.Payment, error) {
	if m.insertErr != nil {
		return models.Payment{}, m.insertErr
	}
	payment.ID = 1
	m.insertedPayment = &payment
	return payment, nil
}

func (m *mockStore) ClearCartItems(_ context.Context, sessionID string) error {
	m.clearedSession = sessionID
	return m.clearErr
}

func (m *mockStore) GetPaymentByIntentID(_ context.Context, _ string) (models.Payment, error) {
	return m.payment, m.paymentErr
}

func (m *mockStore) InsertContact(_ context.Context, contact models.Contact) (models.Contact, error) {
	if m.contactErr != nil {
		return models.Contact{}, m.contactErr
	}
	contact.ID = 1
	m.insertedContact = &contact
	return contact, nil
}

// mockProvider implements PaymentProvider for testing.
type mockProvider struct {
	intent *services.PaymentIntent
	err    error

	createdAmount  int64
	createdSession string
	createdEmail   string
	retrievedID    string
}

func (m *mockProvider) CreatePaymentIntent(_ context.Context, amount int64, sessionID, customerEmail string) (*services.PaymentIntent, error) {
	m.createdAmount = amount
	m.createdSession = sessionID
	m.createdEmail = customerEmail
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}

func (m *mockProvider) RetrievePaymentIntent(_ context.Context, paymentIntentID string) (*services.PaymentIntent, error) {
	m.retrievedID = paymentIntentID
	if m.err != nil {
		return nil, m.err
	}
	return m.intent, nil
}

// mockRelay implements ContactRelay for testing.
type mockRelay struct {
	err    error
	called bool
}

func (m *mockRelay) Forward(_ context.Context, _, _, _ string) error {
	m.called = true
	return m.err
}
