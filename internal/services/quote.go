package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Brendon2203/techsolutions/gen/quote"
	"github.com/Brendon2203/techsolutions/internal/domain"
	"github.com/Brendon2203/techsolutions/internal/logging"
	"github.com/Brendon2203/techsolutions/internal/metrics"
	apperrors "github.com/Brendon2203/techsolutions/pkg/errors"
)

// SubmitSuccessMessage is returned for every stored quote request
const SubmitSuccessMessage = "Quote request created successfully!"

// QuoteStore persists submissions
type QuoteStore interface {
	Insert(ctx context.Context, sub *domain.QuoteSubmission) (*domain.QuoteRequest, error)
}

// Notifier tells the operator about a stored submission
type Notifier interface {
	Notify(ctx context.Context, sub *domain.QuoteSubmission) NotifyResult
}

// QuoteService implements the quote service
type QuoteService struct {
	store               QuoteStore
	notifier            Notifier
	validate            *validator.Validate
	exposeStorageErrors bool
}

// NewQuoteService creates a new quote service. When exposeStorageErrors is
// false clients get a generic message instead of the storage failure text.
func NewQuoteService(store QuoteStore, notifier Notifier, exposeStorageErrors bool) *QuoteService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return &QuoteService{
		store:               store,
		notifier:            notifier,
		validate:            v,
		exposeStorageErrors: exposeStorageErrors,
	}
}

// Submit implements the submit quote request method
func (s *QuoteService) Submit(ctx context.Context, p *quote.QuoteRequestPayload) (*quote.Quoterequestresult, error) {
	sub := newSubmission(p)
	reqID := requestID(ctx)
	logging.Info("submit request", "component", "quote", "request_id", reqID, "name", sub.Name, "email", sub.Email)

	if err := s.validateSubmission(sub); err != nil {
		logging.Warn("submit rejected", "component", "quote", "request_id", reqID, "error", err)
		metrics.RecordQuoteRequest("invalid")
		return nil, quote.MakeInvalidPayload(errors.New(err.Detail()))
	}

	stored, err := s.store.Insert(ctx, sub)
	if err != nil {
		logging.Error("submit failed", "component", "quote", "request_id", reqID, "error", err)
		metrics.RecordQuoteRequest("storage_error")
		return nil, quote.MakeBadRequest(errors.New(s.clientDetail(err)))
	}
	metrics.RecordQuoteRequest("stored")

	// The row is committed, so a client disconnect must not cancel the email.
	// Notification outcome never changes the response.
	res := s.notifier.Notify(context.WithoutCancel(ctx), sub)

	logging.Info("submit successful", "component", "quote", "request_id", reqID,
		"id", stored.ID, "notification", string(res.Status))

	return &quote.Quoterequestresult{Message: SubmitSuccessMessage}, nil
}

// validateSubmission checks presence and non-emptiness of the fields
func (s *QuoteService) validateSubmission(sub *domain.QuoteSubmission) *apperrors.AppError {
	err := s.validate.Struct(sub)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Validation(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fieldPath(fe)))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must contain at least %s item(s)", fieldPath(fe), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed on %s", fieldPath(fe), fe.Tag()))
		}
	}
	return apperrors.Validation(strings.Join(msgs, "; "))
}

// fieldPath drops the struct name from the validator namespace
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return path
}

func (s *QuoteService) clientDetail(err error) string {
	if !s.exposeStorageErrors {
		return "failed to save quote request"
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Detail()
	}
	return err.Error()
}

func newSubmission(p *quote.QuoteRequestPayload) *domain.QuoteSubmission {
	return &domain.QuoteSubmission{
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Company:  p.Company,
		Services: p.Services,
		Message:  p.Message,
	}
}
