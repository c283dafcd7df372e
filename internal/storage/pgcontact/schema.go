package pgcontact

import (
	"context"

	"github.com/pkg/errors"
)

func (s *Storage) initSchema(ctx context.Context) error {
	stmts := []string{
		`
CREATE TABLE IF NOT EXISTS contacts (
  id_contato TEXT PRIMARY KEY,
  protocolo TEXT NOT NULL,
  nome_completo TEXT NOT NULL,
  email TEXT NOT NULL,
  telefone TEXT NOT NULL,
  preferencia_contato TEXT NOT NULL,
  melhor_horario TEXT NOT NULL,
  id_veiculo TEXT NOT NULL,
  modelo_veiculo TEXT NOT NULL,
  assunto TEXT NOT NULL,
  mensagem TEXT NOT NULL,
  financiamento BOOLEAN NOT NULL DEFAULT FALSE,
  termos_privacidade BOOLEAN NOT NULL,
  receber_novidades BOOLEAN NOT NULL DEFAULT FALSE,
  data_envio TIMESTAMPTZ NOT NULL,
  ip_usuario TEXT NOT NULL,
  status TEXT NOT NULL,
  data_ultima_atualizacao TIMESTAMPTZ NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_data_envio ON contacts(data_envio)`,
		// The protocol sequence is shared and never reset, matching the
		// in-memory counter semantics.
		`CREATE SEQUENCE IF NOT EXISTS contact_protocol_seq`,
	}

	for _, q := range stmts {
		if _, err := s.db.Exec(ctx, q); err != nil {
			return errors.Wrap(err, "init schema")
		}
	}
	return nil
}
