package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/AutoVitrine/AutoVitrine/internal/broker/messages"
	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRateLimited marks a submitter who exhausted the per-IP window.
var ErrRateLimited = errors.New("too many submissions")

type Repository interface {
	Create(ctx context.Context, c models.Contact) error
	GetByID(ctx context.Context, id string) (*models.Contact, bool, error)
	List(ctx context.Context) ([]models.Contact, error)
	NextProtocolSeq(ctx context.Context) (uint64, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

type Service struct {
	repo Repository

	limiter  RateLimiter
	rlPerMin int64

	producer Producer
	topic    string
}

func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// WithRateLimiter caps submissions per client IP per minute.
func (s *Service) WithRateLimiter(rl RateLimiter, perMinute int64) *Service {
	s.limiter = rl
	s.rlPerMin = perMinute
	return s
}

// WithProducer publishes a contact.submitted event per stored submission.
func (s *Service) WithProducer(p Producer, topic string) *Service {
	s.producer = p
	s.topic = topic
	return s
}

// Create validates the submission, assigns id and protocol, stores it
// and returns the confirmation payload. The referenced vehicle id is
// taken as-is, never checked against the catalog.
func (s *Service) Create(ctx context.Context, in models.ContactInput, ip string) (*models.ContactConfirmation, error) {
	if verr := validate(in); verr != nil {
		return nil, verr
	}

	if s.limiter != nil && s.rlPerMin > 0 {
		ok, _, err := s.limiter.Allow(ctx, "contact:ip:"+ip, s.rlPerMin, time.Minute)
		if err != nil {
			// Limiter outage must not block intake.
			slog.Warn("contact rate limiter unavailable", "err", err)
		} else if !ok {
			return nil, ErrRateLimited
		}
	}

	now := time.Now().UTC()
	seq, err := s.repo.NextProtocolSeq(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "next protocol seq")
	}
	protocolo := fmt.Sprintf("%s%05d", now.Format("20060102"), seq)

	melhorHorario := in.MelhorHorario
	if melhorHorario == "" {
		melhorHorario = models.DefaultMelhorHorario
	}

	c := models.Contact{
		IDContato:             "contact_" + uuid.NewString(),
		Protocolo:             protocolo,
		NomeCompleto:          in.NomeCompleto,
		Email:                 in.Email,
		Telefone:              in.Telefone,
		PreferenciaContato:    in.PreferenciaContato,
		MelhorHorario:         melhorHorario,
		IDVeiculo:             in.IDVeiculo,
		ModeloVeiculo:         in.ModeloVeiculo,
		Assunto:               in.Assunto,
		Mensagem:              in.Mensagem,
		Financiamento:         in.Financiamento,
		TermosPrivacidade:     in.TermosPrivacidade,
		ReceberNovidades:      in.ReceberNovidades,
		DataEnvio:             now,
		IPUsuario:             ip,
		Status:                models.ContactStatusNovo,
		DataUltimaAtualizacao: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, errors.Wrap(err, "store contact")
	}

	if s.producer != nil && s.topic != "" {
		msg := messages.ContactSubmitted{
			IDContato:     c.IDContato,
			Protocolo:     c.Protocolo,
			IDVeiculo:     c.IDVeiculo,
			ModeloVeiculo: c.ModeloVeiculo,
			Assunto:       c.Assunto,
			Financiamento: c.Financiamento,
			DataEnvio:     c.DataEnvio,
		}
		b, _ := json.Marshal(msg)
		if err := s.producer.Publish(ctx, s.topic, []byte(c.IDContato), b); err != nil {
			// The submission is already stored; the event is best effort.
			slog.Warn("publish contact.submitted failed", "idContato", c.IDContato, "err", err)
		}
	}

	return &models.ContactConfirmation{
		IDContato: c.IDContato,
		Protocolo: c.Protocolo,
		Mensagem:  fmt.Sprintf("Obrigado pelo seu contato! Seu protocolo é %s. Entraremos em contato em até 24 horas úteis.", c.Protocolo),
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Contact, bool, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.List(ctx)
}
