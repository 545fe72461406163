// Package chat orchestrates a single conversation turn: follow-up
// handling, slot extraction, resolver dispatch, context update and reply
// composition. The HTTP layer stays thin; everything interesting about a
// turn happens here.
package chat

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/intent"
	"github.com/omarmubaidin/htu-infobot-go/internal/logger"
	"github.com/omarmubaidin/htu-infobot-go/internal/metrics"
	"github.com/omarmubaidin/htu-infobot-go/internal/resolve"
	"github.com/omarmubaidin/htu-infobot-go/internal/session"
)

// MaxDisambiguationButtons caps how many candidate names a
// disambiguation prompt offers.
const MaxDisambiguationButtons = 4

// Request is one user turn. CurrentProfessor is the client-held "current
// entity" hint; when present it is preferred over server-side session
// state, which keeps the service correct under stateless deployment.
type Request struct {
	Message          string             `json:"message"`
	SessionID        string             `json:"session_id,omitempty"`
	CurrentProfessor *dataset.Professor `json:"current_professor,omitempty"`
}

// Reply is the structured answer for one turn. Professor is set whenever
// the turn resolved (or kept) a single professor, so the client can send
// it back as the next turn's hint.
type Reply struct {
	Text      string             `json:"response"`
	Buttons   []string           `json:"buttons,omitempty"`
	Professor *dataset.Professor `json:"professor,omitempty"`
	SessionID string             `json:"session_id,omitempty"`
}

// Service answers chat turns against the loaded datasets.
// The datasets are read-only; Service is safe for concurrent use.
type Service struct {
	catalog   dataset.Catalog
	directory dataset.Directory
	sessions  *session.Store
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewService creates a chat service.
func NewService(
	catalog dataset.Catalog,
	directory dataset.Directory,
	sessions *session.Store,
	m *metrics.Metrics,
	log *logger.Logger,
) *Service {
	return &Service{
		catalog:   catalog,
		directory: directory,
		sessions:  sessions,
		metrics:   m,
		logger:    log,
	}
}

// Handle processes one turn. It never returns an error: malformed input
// degrades to an "unknown" reply, and absence of data is a result, not a
// failure.
func (s *Service) Handle(ctx context.Context, req Request) Reply {
	start := time.Now()
	log := s.logger.WithModule("chat")

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	s.sessions.Bump(sessionID)

	message := strings.TrimSpace(req.Message)
	tag := intent.Classify(message)

	reply := s.handleTurn(sessionID, tag, message, req.CurrentProfessor)
	reply.SessionID = sessionID

	elapsed := time.Since(start)
	s.metrics.ChatDurationSeconds.WithLabelValues(string(tag)).Observe(elapsed.Seconds())
	log.WithField("session_id", sessionID).
		WithField("intent", string(tag)).
		WithField("duration_ms", elapsed.Milliseconds()).
		Debug("Chat turn handled")

	return reply
}

func (s *Service) handleTurn(sessionID string, tag intent.Intent, message string, hint *dataset.Professor) Reply {
	// Follow-up questions about the current professor take precedence
	// over fresh resolution. The client hint wins; the session store is
	// the fallback when the client does not thread state.
	current := hint
	if current == nil {
		current = s.sessions.Get(sessionID).Professor
	}
	if current != nil {
		if kind, ok := intent.DetectFollowUp(message); ok {
			s.metrics.FollowUpsTotal.WithLabelValues(string(kind)).Inc()
			s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "resolved").Inc()
			return s.answerFollowUp(kind, *current)
		}
	}

	// Study-plan sentences bypass intent-based dispatch entirely; the
	// extraction result alone decides.
	if planQuery, ok := intent.ExtractPlanQuery(message); ok {
		return s.handleStudyPlan(tag, planQuery)
	}

	if code, ok := intent.ExtractSubjectCode(message); ok {
		return s.handleSubject(sessionID, tag, code)
	}

	switch tag {
	case intent.Greeting:
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "static").Inc()
		return renderGreeting()
	case intent.Help:
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "static").Inc()
		return renderHelp()
	}

	// No code, no plan sentence: treat the message as a professor query.
	return s.handleProfessor(sessionID, tag, message)
}

func (s *Service) handleStudyPlan(tag intent.Intent, q intent.PlanQuery) Reply {
	plan, ok := resolve.StudyPlanFor(s.catalog, q.Major, q.Level)
	if !ok {
		s.metrics.ResolverLookupsTotal.WithLabelValues("study_plan", "none").Inc()
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "no_match").Inc()
		return renderPlanNotFound(q.Major)
	}

	s.metrics.ResolverLookupsTotal.WithLabelValues("study_plan", "exact").Inc()
	s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "resolved").Inc()
	return renderPlan(plan)
}

func (s *Service) handleSubject(sessionID string, tag intent.Intent, code string) Reply {
	match, ok := resolve.Subject(s.catalog, code)
	if !ok {
		// A failed resolution clears the context so a stale entity
		// cannot answer the next follow-up.
		s.sessions.Clear(sessionID)
		s.metrics.ResolverLookupsTotal.WithLabelValues("subject", "none").Inc()
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "no_match").Inc()
		return renderUnknown()
	}

	s.sessions.HoldSubject(sessionID, match)
	s.metrics.ResolverLookupsTotal.WithLabelValues("subject", string(match.Type)).Inc()
	s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "resolved").Inc()
	return renderSubject(match)
}

func (s *Service) handleProfessor(sessionID string, tag intent.Intent, message string) Reply {
	matches := resolve.Professor(s.directory, message)

	switch len(matches) {
	case 0:
		s.sessions.Clear(sessionID)
		s.metrics.ResolverLookupsTotal.WithLabelValues("professor", "none").Inc()
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "no_match").Inc()
		return renderUnknown()

	case 1:
		s.sessions.HoldProfessor(sessionID, matches[0].Professor)
		s.metrics.ResolverLookupsTotal.WithLabelValues("professor", string(matches[0].Type)).Inc()
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "resolved").Inc()
		return renderProfessor(matches[0])

	default:
		// Ambiguity clears the context: a guessed winner would make
		// later follow-ups answer about the wrong person.
		s.sessions.Clear(sessionID)
		s.metrics.ResolverLookupsTotal.WithLabelValues("professor", "multiple").Inc()
		s.metrics.ChatRequestsTotal.WithLabelValues(string(tag), "ambiguous").Inc()
		return renderDisambiguation(message, matches, MaxDisambiguationButtons)
	}
}

// sortedCodes returns plan codes in sorted order for stable rendering.
func sortedCodes(plan map[string]dataset.Course) []string {
	codes := make([]string, 0, len(plan))
	for c := range plan {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}
