// Package letter turns form input into a cover letter. A remote generator is
// tried first; any failure there is absorbed and a deterministic letter is
// built from the candidate profile instead.
package letter

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cover-letter/internal/company"
	"github.com/spigell/cover-letter/internal/logger"
	"github.com/spigell/cover-letter/internal/profile"
)

const DefaultTimeout = 5 * time.Second

// Remote generates a cover letter somewhere else, usually the backend service.
type Remote interface {
	Generate(ctx context.Context, in FormInput) (string, error)
}

// Source tells which branch produced a letter.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one generation.
// RemoteErr is set only when Source is SourceFallback.
type Result struct {
	Letter    string
	Source    Source
	Company   company.Info
	RemoteErr error
}

type Orchestrator struct {
	store      *profile.Store
	researcher *company.Researcher
	remote     Remote
	timeout    time.Duration
	logger     *zap.Logger
}

// New creates an Orchestrator. remote may be nil, in which case every letter
// is synthesized locally. A non-positive timeout means DefaultTimeout.
func New(store *profile.Store, researcher *company.Researcher, remote Remote, timeout time.Duration, logger *zap.Logger) *Orchestrator {
	if researcher == nil {
		researcher = company.NewResearcher(nil)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		store:      store,
		researcher: researcher,
		remote:     remote,
		timeout:    timeout,
		logger:     logger,
	}
}

// Generate returns a cover letter for the input. The only possible error is a
// *ValidationError.
func (o *Orchestrator) Generate(ctx context.Context, in FormInput) (string, error) {
	res, err := o.Resolve(ctx, in)
	if err != nil {
		return "", err
	}
	return res.Letter, nil
}

// Resolve is Generate with the information about which branch was taken.
func (o *Orchestrator) Resolve(ctx context.Context, in FormInput) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Normalize()

	log := logger.WithFields(o.logger, logger.FormFields(in.CompanyName, in.RoleName)...)

	info := o.researcher.Research(in.CompanyName, in.CompanyWebsite)
	log.Debug("company research completed",
		zap.String("industry", info.Industry),
		zap.String("description", info.Description),
	)

	text, err := o.tryRemote(ctx, in)
	if err == nil {
		log.Info("cover letter generated",
			zap.String(logger.FieldSource, string(SourceRemote)),
			zap.Int("letter_length", utf8.RuneCountInString(text)),
		)
		return &Result{Letter: text, Source: SourceRemote, Company: info}, nil
	}

	log.Warn("falling back to built-in cover letter",
		zap.String(logger.FieldSource, string(SourceFallback)),
		zap.Error(err),
	)

	return &Result{
		Letter:    Fallback(o.store.Profile(), info, in),
		Source:    SourceFallback,
		Company:   info,
		RemoteErr: err,
	}, nil
}

type remoteReply struct {
	text string
	err  error
}

// tryRemote bounds the remote call by the orchestrator timeout even when the
// remote ignores its context. A late reply is discarded.
func (o *Orchestrator) tryRemote(ctx context.Context, in FormInput) (string, error) {
	if o.remote == nil {
		return "", ErrNoRemote
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	replies := make(chan remoteReply, 1)
	go func() {
		replies <- o.callRemote(ctx, in)
	}()

	var reply remoteReply
	select {
	case reply = <-replies:
	case <-ctx.Done():
		return "", fmt.Errorf("remote generation: %w", ctx.Err())
	}

	if reply.err != nil {
		return "", reply.err
	}
	if strings.TrimSpace(reply.text) == "" {
		return "", ErrEmptyLetter
	}

	return reply.text, nil
}

func (o *Orchestrator) callRemote(ctx context.Context, in FormInput) (reply remoteReply) {
	defer func() {
		if r := recover(); r != nil {
			reply = remoteReply{err: fmt.Errorf("remote generator panicked: %v", r)}
		}
	}()

	text, err := o.remote.Generate(ctx, in)
	if err != nil {
		return remoteReply{err: fmt.Errorf("remote generation: %w", err)}
	}
	return remoteReply{text: text}
}
