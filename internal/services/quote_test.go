package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goa "goa.design/goa/v3/pkg"

	"github.com/Brendon2203/techsolutions/gen/quote"
	"github.com/Brendon2203/techsolutions/internal/domain"
	apperrors "github.com/Brendon2203/techsolutions/pkg/errors"
)

type fakeStore struct {
	inserted []*domain.QuoteSubmission
	err      error
}

func (s *fakeStore) Insert(_ context.Context, sub *domain.QuoteSubmission) (*domain.QuoteRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.inserted = append(s.inserted, sub)
	q, err := domain.NewQuoteRequest(sub)
	if err != nil {
		return nil, err
	}
	q.ID = uint(len(s.inserted))
	return q, nil
}

type fakeNotifier struct {
	calls  int
	result NotifyResult
}

func (n *fakeNotifier) Notify(context.Context, *domain.QuoteSubmission) NotifyResult {
	n.calls++
	return n.result
}

func validPayload() *quote.QuoteRequestPayload {
	return &quote.QuoteRequestPayload{
		Name:     "Ana",
		Email:    "ana@x.com",
		Phone:    "123",
		Services: []string{"design", "seo"},
		Message:  "hi",
	}
}

func TestSubmit_Success(t *testing.T) {
	statuses := []NotifyResult{
		{Status: NotifySent},
		{Status: NotifySkipped},
		{Status: NotifyFailed, Err: apperrors.Notification("smtp down", errors.New("dial tcp: refused"))},
	}
	for _, res := range statuses {
		t.Run(string(res.Status), func(t *testing.T) {
			store := &fakeStore{}
			notifier := &fakeNotifier{result: res}
			svc := NewQuoteService(store, notifier, true)

			out, err := svc.Submit(context.Background(), validPayload())

			require.NoError(t, err)
			assert.Equal(t, SubmitSuccessMessage, out.Message)
			require.Len(t, store.inserted, 1)
			assert.Equal(t, "Ana", store.inserted[0].Name)
			assert.Equal(t, []string{"design", "seo"}, store.inserted[0].Services)
			assert.Equal(t, 1, notifier.calls)
		})
	}
}

func TestSubmit_NotifiesAfterClientDisconnect(t *testing.T) {
	store := &fakeStore{}
	d := &dialRecorder{client: &fakeSMTPClient{}}
	email := NewEmailService(completeEmailConfig()).WithDialer(d.dial)
	svc := NewQuoteService(store, email, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := svc.Submit(ctx, validPayload())

	require.NoError(t, err)
	assert.Equal(t, SubmitSuccessMessage, out.Message)
	require.Len(t, store.inserted, 1)
	require.Len(t, d.addrs, 1, "email must still be attempted")
	assert.NoError(t, d.ctxErrs[0])
	assert.Contains(t, d.client.calls, "quit")
}

func TestSubmit_KeepsCompany(t *testing.T) {
	store := &fakeStore{}
	svc := NewQuoteService(store, &fakeNotifier{result: NotifyResult{Status: NotifySkipped}}, true)
	p := validPayload()
	company := "Acme"
	p.Company = &company

	_, err := svc.Submit(context.Background(), p)

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Acme", store.inserted[0].CompanyOrEmpty())
}

func TestSubmit_InvalidPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*quote.QuoteRequestPayload)
		want   string
	}{
		{name: "empty name", mutate: func(p *quote.QuoteRequestPayload) { p.Name = "" }, want: "name is required"},
		{name: "empty message", mutate: func(p *quote.QuoteRequestPayload) { p.Message = "" }, want: "message is required"},
		{name: "no services", mutate: func(p *quote.QuoteRequestPayload) { p.Services = []string{} }, want: "services must contain at least 1 item(s)"},
		{name: "nil services", mutate: func(p *quote.QuoteRequestPayload) { p.Services = nil }, want: "services is required"},
		{name: "blank service", mutate: func(p *quote.QuoteRequestPayload) { p.Services = []string{"design", ""} }, want: "services[1] is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			notifier := &fakeNotifier{}
			svc := NewQuoteService(store, notifier, true)
			p := validPayload()
			tc.mutate(p)

			_, err := svc.Submit(context.Background(), p)

			var serr *goa.ServiceError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, "invalid_payload", serr.Name)
			assert.Contains(t, serr.Message, tc.want)
			assert.Empty(t, store.inserted)
			assert.Zero(t, notifier.calls)
		})
	}
}

func TestSubmit_StorageFailure(t *testing.T) {
	storeErr := apperrors.Storage("failed to save quote request", errors.New("no such table: quote_requests"))

	t.Run("exposed", func(t *testing.T) {
		notifier := &fakeNotifier{}
		svc := NewQuoteService(&fakeStore{err: storeErr}, notifier, true)

		_, err := svc.Submit(context.Background(), validPayload())

		var serr *goa.ServiceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "bad_request", serr.Name)
		assert.Equal(t, "no such table: quote_requests", serr.Message)
		assert.Zero(t, notifier.calls, "no notification for unsaved requests")
	})

	t.Run("hidden", func(t *testing.T) {
		svc := NewQuoteService(&fakeStore{err: storeErr}, &fakeNotifier{}, false)

		_, err := svc.Submit(context.Background(), validPayload())

		var serr *goa.ServiceError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "bad_request", serr.Name)
		assert.Equal(t, "failed to save quote request", serr.Message)
	})
}
