package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njorogedev/leathercraft-api/internal/domain/access"
	"github.com/njorogedev/leathercraft-api/internal/domain/enum"
	"github.com/njorogedev/leathercraft-api/pkg/apperror"
)

func (s *testSetup) createInvoice(ctx context.Context, scope access.Scope, customerID uuid.UUID, number string, total float64) uuid.UUID {
	s.t.Helper()
	invoice, err := s.Invoices.Create(ctx, scope, &CreateInvoiceInput{
		CustomerID:    customerID,
		InvoiceNumber: number,
		Date:          time.Now(),
		DueDate:       time.Now().AddDate(0, 0, 30),
		TotalAmount:   decimal.NewFromFloat(total),
	})
	require.NoError(s.t, err)
	return invoice.ID
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("full payment marks the invoice paid", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6001", 100.00)

		invoice, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(100.00),
		})
		require.NoError(t, err)

		assert.Equal(t, enum.InvoicePaid, invoice.Status)
		assert.True(t, invoice.AmountPaid().Equal(decimal.NewFromFloat(100.00)))
		assert.True(t, invoice.AmountDue().IsZero())
	})

	t.Run("partial payments accumulate into paid", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6002", 100.00)

		invoice, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(30.00),
		})
		require.NoError(t, err)
		assert.Equal(t, enum.InvoicePartiallyPaid, invoice.Status)
		assert.True(t, invoice.AmountDue().Equal(decimal.NewFromFloat(70.00)),
			"expected 70.00 due, got %s", invoice.AmountDue())

		invoice, err = s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(70.00),
		})
		require.NoError(t, err)
		assert.Equal(t, enum.InvoicePaid, invoice.Status)
		assert.Len(t, invoice.Payments, 2)
	})

	t.Run("overpayment is accepted and drives amount due negative", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6003", 100.00)

		invoice, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(150.00),
		})
		require.NoError(t, err)

		assert.Equal(t, enum.InvoicePaid, invoice.Status)
		assert.True(t, invoice.AmountDue().Equal(decimal.NewFromFloat(-50.00)),
			"expected -50.00 due, got %s", invoice.AmountDue())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6004", 100.00)

		_, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.Zero,
		})
		require.Error(t, err)
		assert.Contains(t, apperror.GetAppError(err).Message, "Amount must be positive")

		_, err = s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(-10.00),
		})
		require.Error(t, err)
	})

	t.Run("rejects payments on a cancelled invoice", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6005", 100.00)

		cancelled := enum.InvoiceCancelled
		_, err := s.Invoices.Update(ctx, scope, invoiceID, &UpdateInvoiceInput{Status: &cancelled})
		require.NoError(t, err)

		_, err = s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(10.00),
		})
		require.Error(t, err)
		assert.Equal(t, "Payments cannot be recorded on a CANCELLED invoice",
			apperror.GetAppError(err).Message)
	})

	t.Run("defaults the payment method to bank", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6006", 50.00)

		invoice, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(50.00),
		})
		require.NoError(t, err)
		require.Len(t, invoice.Payments, 1)
		assert.Equal(t, enum.PaymentMethodBank, invoice.Payments[0].Method)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-6007", 50.00)

		_, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(10.00),
			Method: enum.PaymentMethod("BARTER"),
		})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})
}

func TestInvoiceLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("settlement statuses cannot be assigned directly", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-7001", 100.00)

		paid := enum.InvoicePaid
		_, err := s.Invoices.Update(ctx, scope, invoiceID, &UpdateInvoiceInput{Status: &paid})
		require.Error(t, err)
		assert.Contains(t, apperror.GetAppError(err).Message, "cannot be assigned directly")

		sent := enum.InvoiceSent
		invoice, err := s.Invoices.Update(ctx, scope, invoiceID, &UpdateInvoiceInput{Status: &sent})
		require.NoError(t, err)
		assert.Equal(t, enum.InvoiceSent, invoice.Status)
	})

	t.Run("invoices with payments cannot be deleted", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-7002", 100.00)

		_, err := s.Invoices.RecordPayment(ctx, scope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(25.00),
		})
		require.NoError(t, err)

		err = s.Invoices.Delete(ctx, scope, invoiceID)
		require.Error(t, err)

		payments, err := s.Invoices.ListPayments(ctx, scope, invoiceID)
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("rejects a negative manual total", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")

		_, err := s.Invoices.Create(ctx, scope, &CreateInvoiceInput{
			CustomerID:    customer.ID,
			InvoiceNumber: "INV-7003",
			Date:          time.Now(),
			DueDate:       time.Now().AddDate(0, 0, 30),
			TotalAmount:   decimal.NewFromFloat(-5.00),
		})
		require.Error(t, err)
		assert.Equal(t, "Invoice total cannot be negative", apperror.GetAppError(err).Message)
	})

	t.Run("payments are invisible across tenants", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		_, otherScope := s.createTenant("Rival Works")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		invoiceID := s.createInvoice(ctx, scope, customer.ID, "INV-7004", 100.00)

		_, err := s.Invoices.RecordPayment(ctx, otherScope, invoiceID, &RecordPaymentInput{
			Amount: decimal.NewFromFloat(10.00),
		})
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)

		_, err = s.Invoices.ListPayments(ctx, otherScope, invoiceID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("duplicate invoice numbers conflict within a tenant", func(t *testing.T) {
		s := newTestSetup(t)
		tenantID, scope := s.createTenant("Hide & Stitch")
		customer := s.createCustomer(tenantID, "Amara Leatherworks")
		s.createInvoice(ctx, scope, customer.ID, "INV-7005", 100.00)

		_, err := s.Invoices.Create(ctx, scope, &CreateInvoiceInput{
			CustomerID:    customer.ID,
			InvoiceNumber: "INV-7005",
			Date:          time.Now(),
			DueDate:       time.Now().AddDate(0, 0, 30),
			TotalAmount:   decimal.NewFromFloat(20.00),
		})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.GetAppError(err).Code)
	})
}
