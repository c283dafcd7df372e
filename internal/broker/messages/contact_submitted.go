package messages

import "time"

// ContactSubmitted is emitted once per stored submission so downstream
// consumers (notifier) can follow up.
type ContactSubmitted struct {
	IDContato     string    `json:"id_contato"`
	Protocolo     string    `json:"protocolo"`
	IDVeiculo     string    `json:"id_veiculo"`
	ModeloVeiculo string    `json:"modelo_veiculo"`
	Assunto       string    `json:"assunto"`
	Financiamento bool      `json:"financiamento,omitempty"`
	DataEnvio     time.Time `json:"data_envio"`
}
