package pgcontact

import (
	"context"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
	"github.com/pkg/errors"
)

func (s *Storage) Create(ctx context.Context, c models.Contact) error {
	_, err := s.db.Exec(ctx, `
INSERT INTO contacts (
  id_contato, protocolo, nome_completo, email, telefone,
  preferencia_contato, melhor_horario, id_veiculo, modelo_veiculo,
  assunto, mensagem, financiamento, termos_privacidade, receber_novidades,
  data_envio, ip_usuario, status, data_ultima_atualizacao
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
`,
		c.IDContato, c.Protocolo, c.NomeCompleto, c.Email, c.Telefone,
		c.PreferenciaContato, c.MelhorHorario, c.IDVeiculo, c.ModeloVeiculo,
		c.Assunto, c.Mensagem, c.Financiamento, c.TermosPrivacidade, c.ReceberNovidades,
		c.DataEnvio, c.IPUsuario, c.Status, c.DataUltimaAtualizacao,
	)
	if err != nil {
		return errors.Wrap(err, "insert contact")
	}
	return nil
}

func (s *Storage) GetByID(ctx context.Context, id string) (*models.Contact, bool, error) {
	rows, err := s.db.Query(ctx, `
SELECT
  id_contato, protocolo, nome_completo, email, telefone,
  preferencia_contato, melhor_horario, id_veiculo, modelo_veiculo,
  assunto, mensagem, financiamento, termos_privacidade, receber_novidades,
  data_envio, ip_usuario, status, data_ultima_atualizacao
FROM contacts
WHERE id_contato = $1
`, id)
	if err != nil {
		return nil, false, errors.Wrap(err, "select contact")
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, false, rows.Err()
	}
	c, err := scanContact(rows.Scan)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

func (s *Storage) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.Query(ctx, `
SELECT
  id_contato, protocolo, nome_completo, email, telefone,
  preferencia_contato, melhor_horario, id_veiculo, modelo_veiculo,
  assunto, mensagem, financiamento, termos_privacidade, receber_novidades,
  data_envio, ip_usuario, status, data_ultima_atualizacao
FROM contacts
ORDER BY data_envio
`)
	if err != nil {
		return nil, errors.Wrap(err, "select contacts")
	}
	defer rows.Close()

	var out []models.Contact
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Storage) NextProtocolSeq(ctx context.Context) (uint64, error) {
	var n uint64
	if err := s.db.QueryRow(ctx, `SELECT nextval('contact_protocol_seq')`).Scan(&n); err != nil {
		return 0, errors.Wrap(err, "nextval protocol seq")
	}
	return n, nil
}

func scanContact(scan func(dest ...any) error) (*models.Contact, error) {
	var c models.Contact
	if err := scan(
		&c.IDContato, &c.Protocolo, &c.NomeCompleto, &c.Email, &c.Telefone,
		&c.PreferenciaContato, &c.MelhorHorario, &c.IDVeiculo, &c.ModeloVeiculo,
		&c.Assunto, &c.Mensagem, &c.Financiamento, &c.TermosPrivacidade, &c.ReceberNovidades,
		&c.DataEnvio, &c.IPUsuario, &c.Status, &c.DataUltimaAtualizacao,
	); err != nil {
		return nil, errors.Wrap(err, "scan contact")
	}
	return &c, nil
}
