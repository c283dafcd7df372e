package models

import "time"

// Enumerations accepted by the contact form.
var (
	ValidPreferencias = []string{"Telefone", "E-mail", "WhatsApp"}
	ValidHorarios     = []string{"Manhã", "Tarde", "Noite", "Qualquer horário"}
	ValidAssuntos     = []string{
		"Informações gerais",
		"Agendamento de test drive",
		"Negociação de preço",
		"Financiamento",
		"Outro",
	}
)

const (
	ContactStatusNovo = "Novo"

	DefaultMelhorHorario = "Qualquer horário"
)

// ContactInput is a submission as received from the client, before
// validation and enrichment.
type ContactInput struct {
	NomeCompleto       string `json:"nomeCompleto"`
	Email              string `json:"email"`
	Telefone           string `json:"telefone"`
	PreferenciaContato string `json:"preferenciaContato"`
	MelhorHorario      string `json:"melhorHorario,omitempty"`
	IDVeiculo          string `json:"idVeiculo"`
	ModeloVeiculo      string `json:"modeloVeiculo"`
	Assunto            string `json:"assunto"`
	Mensagem           string `json:"mensagem"`
	Financiamento      bool   `json:"financiamento,omitempty"`
	TermosPrivacidade  bool   `json:"termosPrivacidade"`
	ReceberNovidades   bool   `json:"receberNovidades,omitempty"`
}

// Contact is the stored submission record.
type Contact struct {
	IDContato              string    `json:"idContato"`
	Protocolo              string    `json:"protocolo"`
	NomeCompleto           string    `json:"nomeCompleto"`
	Email                  string    `json:"email"`
	Telefone               string    `json:"telefone"`
	PreferenciaContato     string    `json:"preferenciaContato"`
	MelhorHorario          string    `json:"melhorHorario"`
	IDVeiculo              string    `json:"idVeiculo"`
	ModeloVeiculo          string    `json:"modeloVeiculo"`
	Assunto                string    `json:"assunto"`
	Mensagem               string    `json:"mensagem"`
	Financiamento          bool      `json:"financiamento"`
	TermosPrivacidade      bool      `json:"termosPrivacidade"`
	ReceberNovidades       bool      `json:"receberNovidades"`
	DataEnvio              time.Time `json:"dataEnvio"`
	IPUsuario              string    `json:"ipUsuario"`
	Status                 string    `json:"status"`
	DataUltimaAtualizacao  time.Time `json:"dataUltimaAtualizacao"`
}

// ContactConfirmation is the payload returned after a stored submission.
type ContactConfirmation struct {
	IDContato string `json:"idContato"`
	Protocolo string `json:"protocolo"`
	Mensagem  string `json:"mensagem"`
}
