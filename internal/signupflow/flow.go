// Package signupflow implements the submission state machine behind the
// freelancer sign-up form. The embedded surface renders from a State
// snapshot; every submit attempt collapses into exactly one outcome
// transition, so navigation and scheduling are injected to keep the
// timing contract testable.
package signupflow

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gigboard/gigboard-api/pkg/httpclient"
)

// RedirectDelay is how long the success toast stays up before the flow
// navigates back home
const RedirectDelay = 3 * time.Second

// alreadyRegisteredMessage is the exact server text for a duplicate wallet.
// The flow string-matches it to pick the warning outcome.
const alreadyRegisteredMessage = "This wallet is already registered"

// Severity classifies a toast
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ErrorCode identifies why a submission did not go through
type ErrorCode string

const (
	ErrorNone               ErrorCode = ""
	ErrorWalletNotConnected ErrorCode = "WALLET_NOT_CONNECTED"
	ErrorAlreadyRegistered  ErrorCode = "ALREADY_REGISTERED"
	ErrorRegistrationFailed ErrorCode = "REGISTRATION_FAILED"
)

// Message returns the banner text shown for the error code
func (e ErrorCode) Message() string {
	switch e {
	case ErrorWalletNotConnected:
		return "Please connect your wallet to register"
	case ErrorAlreadyRegistered:
		return alreadyRegisteredMessage
	case ErrorRegistrationFailed:
		return "Registration failed. Please try again."
	default:
		return ""
	}
}

// Recoverable reports whether the UI offers a retry for the error code.
// An already-registered wallet only gets a log-in link.
func (e ErrorCode) Recoverable() bool {
	switch e {
	case ErrorWalletNotConnected, ErrorRegistrationFailed:
		return true
	default:
		return false
	}
}

// Toast is a transient notification
type Toast struct {
	Visible  bool
	Message  string
	Severity Severity
}

// State is a snapshot of the flow, safe to copy
type State struct {
	Loading bool
	Error   ErrorCode
	Toast   Toast
}

// FormData holds the raw form fields as the surface collects them.
// Skills are a single comma-separated text input.
type FormData struct {
	FullName   string
	Email      string
	SkillsRaw  string
	Experience string
	HourlyRate float64
	Portfolio  string
	Bio        string
}

// Skills splits the raw skills input on commas and trims each segment.
// Empty segments are preserved, matching what the form submits.
func (f FormData) Skills() []string {
	parts := strings.Split(f.SkillsRaw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Flow drives a sign-up submission against the registration endpoint
type Flow struct {
	endpoint string
	client   httpclient.Client
	navigate func(string)
	schedule func(time.Duration, func())

	mu    sync.Mutex
	state State
}

// NewFlow creates a flow posting to endpoint. navigate is invoked with the
// target path after a successful registration.
func NewFlow(endpoint string, client httpclient.Client, navigate func(string)) *Flow {
	return &Flow{
		endpoint: endpoint,
		client:   client,
		navigate: navigate,
		schedule: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// WithScheduler overrides the redirect scheduler (used in tests)
func (f *Flow) WithScheduler(schedule func(time.Duration, func())) *Flow {
	f.schedule = schedule
	return f
}

// registrationPayload mirrors the registration endpoint's request body
type registrationPayload struct {
	FullName      string   `json:"fullName"`
	Email         string   `json:"email"`
	Skills        []string `json:"skills"`
	Experience    string   `json:"experience"`
	HourlyRate    float64  `json:"hourlyRate"`
	Portfolio     string   `json:"portfolio"`
	Bio           string   `json:"bio"`
	WalletAddress string   `json:"walletAddress"`
}

// Submit runs one registration attempt. Every attempt ends in exactly one
// outcome: a success toast, an already-registered warning, a failure toast,
// or the wallet-not-connected error. Failures never escape as panics.
func (f *Flow) Submit(ctx context.Context, form FormData, walletAddress string) {
	f.mu.Lock()
	f.state.Error = ErrorNone
	f.state.Toast = Toast{}
	f.state.Loading = true
	f.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			f.fail()
		}
		f.setLoading(false)
	}()

	if walletAddress == "" {
		f.setError(ErrorWalletNotConnected)
		return
	}

	payload := registrationPayload{
		FullName:      form.FullName,
		Email:         form.Email,
		Skills:        form.Skills(),
		Experience:    form.Experience,
		HourlyRate:    form.HourlyRate,
		Portfolio:     form.Portfolio,
		Bio:           form.Bio,
		WalletAddress: walletAddress,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		f.fail()
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		f.fail()
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		f.fail()
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		f.succeed()
		f.schedule(RedirectDelay, func() { f.navigate("/") })
		return
	}

	var errBody struct {
		Message string `json:"message"`
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message == alreadyRegisteredMessage {
		f.mu.Lock()
		f.state.Error = ErrorAlreadyRegistered
		f.state.Toast = Toast{Visible: true, Message: alreadyRegisteredMessage, Severity: SeverityWarning}
		f.mu.Unlock()
		return
	}

	f.fail()
}

// TryAgain clears a recoverable error so the form can be resubmitted
func (f *Flow) TryAgain() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state.Error == ErrorAlreadyRegistered {
		return
	}
	f.state.Error = ErrorNone
}

// DismissToast hides the current toast
func (f *Flow) DismissToast() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Toast.Visible = false
}

// State returns a snapshot of the current flow state
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setLoading(loading bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = loading
}

func (f *Flow) setError(code ErrorCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Error = code
}

func (f *Flow) succeed() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Error = ErrorNone
	f.state.Toast = Toast{
		Visible:  true,
		Message:  "Registration successful! Redirecting to home...",
		Severity: SeveritySuccess,
	}
}

func (f *Flow) fail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Error = ErrorRegistrationFailed
	f.state.Toast = Toast{
		Visible:  true,
		Message:  "Registration failed. Please try again.",
		Severity: SeverityError,
	}
}
