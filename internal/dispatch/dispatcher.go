package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"sentimock/internal/domain"
	apperrors "sentimock/internal/errors"
	"sentimock/internal/metrics"
)

// Canonical operation names. The GraphQL documents the SPA sends name their
// operations in PascalCase (Login, Register, AnalyzeSentiment, GetUser);
// Canonical folds both spellings onto these.
const (
	OpLogin            = "login"
	OpRegister         = "register"
	OpAnalyzeSentiment = "analyzeSentiment"
	OpGetUser          = "getUser"
)

// maxTextLen is the analyzeSentiment input limit, counted in characters.
const maxTextLen = 500

// Exact client-facing messages. Frontends match on these strings; never
// reword them.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgEmailInUse         = "Email already in use"
	msgTextEmpty          = "Text cannot be empty"
	msgTextTooLong        = "Text must be 500 characters or less"
)

var operationNames = map[string]string{
	"Login":            OpLogin,
	"login":            OpLogin,
	"Register":         OpRegister,
	"register":         OpRegister,
	"AnalyzeSentiment": OpAnalyzeSentiment,
	"analyzeSentiment": OpAnalyzeSentiment,
	"GetUser":          OpGetUser,
	"getUser":          OpGetUser,
}

// Canonical maps a GraphQL operation name to its canonical dispatcher
// operation, reporting whether the name is known.
func Canonical(name string) (string, bool) {
	op, ok := operationNames[name]
	return op, ok
}

// Dispatcher routes operations to their handlers. Stateless across calls
// except for the shared user store; register is the only mutating operation.
type Dispatcher struct {
	users  domain.UserStore
	tokens domain.TokenIssuer
	scorer domain.Scorer
	clock  clockwork.Clock
	delay  time.Duration
}

// New creates a dispatcher. delay is the simulated network latency applied to
// successful analyzeSentiment calls; zero disables it.
func New(users domain.UserStore, tokens domain.TokenIssuer, scorer domain.Scorer, clock clockwork.Clock, delay time.Duration) *Dispatcher {
	return &Dispatcher{
		users:  users,
		tokens: tokens,
		scorer: scorer,
		clock:  clock,
		delay:  delay,
	}
}

// Dispatch executes one operation and returns the GraphQL response body.
// A failed operation yields exactly one error entry and no data; success and
// errors never mix.
func (d *Dispatcher) Dispatch(ctx context.Context, operation string, vars map[string]any) *domain.GraphQLResponse {
	start := d.clock.Now()

	field, payload, err := d.route(ctx, operation, vars)

	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.OperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.OperationDuration.WithLabelValues(operation).Observe(d.clock.Since(start).Seconds())

	if err != nil {
		structured := apperrors.AsStructuredError(err)
		metrics.OperationErrorsTotal.WithLabelValues(string(structured.Type)).Inc()
		slog.InfoContext(ctx, "Operation rejected",
			"operation", operation,
			"error_type", structured.Type,
			"message", structured.Message,
		)
		return &domain.GraphQLResponse{Errors: []domain.GraphQLError{structured.ToGraphQL(operation)}}
	}

	slog.DebugContext(ctx, "Operation completed", "operation", operation)
	return &domain.GraphQLResponse{Data: map[string]any{field: payload}}
}

// route returns the data field name the payload resolves to, the payload
// itself, or an error.
func (d *Dispatcher) route(ctx context.Context, operation string, vars map[string]any) (string, any, error) {
	switch operation {
	case OpLogin:
		payload, err := d.login(ctx, vars)
		return "login", payload, err
	case OpRegister:
		payload, err := d.register(ctx, vars)
		return "register", payload, err
	case OpAnalyzeSentiment:
		payload, err := d.analyzeSentiment(ctx, vars)
		return "analyzeSentiment", payload, err
	case OpGetUser:
		payload, err := d.getUser(ctx)
		return "me", payload, err
	default:
		return "", nil, apperrors.ValidationError(fmt.Sprintf("Unknown operation %q", operation))
	}
}

func (d *Dispatcher) login(ctx context.Context, vars map[string]any) (*domain.AuthPayload, error) {
	email := stringVar(vars, "email")
	password := stringVar(vars, "password")

	account, err := d.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		// Same message as a wrong password so callers cannot probe which
		// emails are registered.
		return nil, apperrors.AuthenticationError(msgInvalidCredentials)
	}
	if err != nil {
		return nil, apperrors.InternalError("failed to look up account", err)
	}
	if account.Password != password {
		return nil, apperrors.AuthenticationError(msgInvalidCredentials)
	}

	return d.authPayload(account), nil
}

func (d *Dispatcher) register(ctx context.Context, vars map[string]any) (*domain.AuthPayload, error) {
	email := stringVar(vars, "email")
	password := stringVar(vars, "password")

	_, err := d.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, apperrors.ConflictError(msgEmailInUse)
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, apperrors.InternalError("failed to look up account", err)
	}

	account, err := d.users.Add(ctx, email, password)
	if errors.Is(err, domain.ErrEmailTaken) {
		// Lost a race against a concurrent registration of the same email.
		return nil, apperrors.ConflictError(msgEmailInUse)
	}
	if err != nil {
		return nil, apperrors.InternalError("failed to create account", err)
	}

	metrics.AccountsRegisteredTotal.Inc()
	slog.InfoContext(ctx, "Account registered", "account_id", account.ID)

	return d.authPayload(account), nil
}

func (d *Dispatcher) analyzeSentiment(ctx context.Context, vars map[string]any) (*domain.SentimentResult, error) {
	text := stringVar(vars, "text")

	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ValidationError(msgTextEmpty)
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		return nil, apperrors.ValidationError(msgTextTooLong)
	}

	// Simulated network latency. The goroutine parks on the clock instead of
	// computing eagerly, so callers observe the same deferred completion the
	// real backend would produce.
	if d.delay > 0 {
		select {
		case <-d.clock.After(d.delay):
		case <-ctx.Done():
			return nil, apperrors.InternalError("request canceled", ctx.Err())
		}
	}

	result := d.scorer.Score(text)
	metrics.SentimentResultsTotal.WithLabelValues(string(result.Sentiment)).Inc()
	return &result, nil
}

// getUser answers with the first-registered account regardless of any
// presented token. Verifying the bearer token against the issuer is a known
// gap inherited from the backend this mock stands in for; keep the behaviors
// aligned until that backend verifies tokens itself.
func (d *Dispatcher) getUser(ctx context.Context) (*domain.UserPayload, error) {
	account, err := d.users.First(ctx)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, apperrors.NotFoundError("No account registered")
	}
	if err != nil {
		return nil, apperrors.InternalError("failed to load account", err)
	}
	return &domain.UserPayload{ID: account.ID, Email: account.Email}, nil
}

func (d *Dispatcher) authPayload(account *domain.Account) *domain.AuthPayload {
	return &domain.AuthPayload{
		Token: d.tokens.Issue(account),
		User:  domain.UserPayload{ID: account.ID, Email: account.Email},
	}
}

func stringVar(vars map[string]any, key string) string {
	value, _ := vars[key].(string)
	return value
}
