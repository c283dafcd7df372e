package contacts

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/AutoVitrine/AutoVitrine/internal/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
)

// ValidationError carries the machine-readable field-error code the
// client maps to a localized message.
type ValidationError struct {
	Code    string
	Details any
}

func (e *ValidationError) Error() string { return e.Code }

func invalid(code string, details ...any) *ValidationError {
	e := &ValidationError{Code: code}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// validate runs the rule chain in fixed order; the first failing rule
// wins and short-circuits the rest.
func validate(in models.ContactInput) *ValidationError {
	if strings.TrimSpace(in.NomeCompleto) == "" {
		return invalid("nomeCompletoRequired")
	}
	if strings.TrimSpace(in.Email) == "" {
		return invalid("emailRequired")
	}
	if strings.TrimSpace(in.Telefone) == "" {
		return invalid("telefoneRequired")
	}
	if strings.TrimSpace(in.PreferenciaContato) == "" {
		return invalid("preferenciaContatoRequired")
	}
	if strings.TrimSpace(in.IDVeiculo) == "" {
		return invalid("idVeiculoRequired")
	}
	if strings.TrimSpace(in.ModeloVeiculo) == "" {
		return invalid("modeloVeiculoRequired")
	}
	if strings.TrimSpace(in.Assunto) == "" {
		return invalid("assuntoRequired")
	}
	if strings.TrimSpace(in.Mensagem) == "" {
		return invalid("mensagemRequired")
	}
	if !in.TermosPrivacidade {
		return invalid("termosPrivacidadeRequired")
	}

	if utf8.RuneCountInString(in.NomeCompleto) < 3 {
		return invalid("nomeDeveConterPeloMenos3Caracteres")
	}
	if utf8.RuneCountInString(in.NomeCompleto) > 100 {
		return invalid("nomeDeveConterNoMaximo100Caracteres")
	}
	if len(strings.Fields(in.NomeCompleto)) < 2 {
		return invalid("nomeDeveConterNomeESobrenome")
	}

	if !emailRegex.MatchString(in.Email) {
		return invalid("emailInvalido")
	}
	if utf8.RuneCountInString(in.Email) > 100 {
		return invalid("emailDeveConterNoMaximo100Caracteres")
	}

	if len(nonDigitRegex.ReplaceAllString(in.Telefone, "")) < 10 {
		return invalid("telefoneDeveConterPeloMenos10Digitos")
	}

	if !containsString(models.ValidPreferencias, in.PreferenciaContato) {
		return invalid("preferenciaContatoInvalida", models.ValidPreferencias)
	}

	if in.MelhorHorario != "" && !containsString(models.ValidHorarios, in.MelhorHorario) {
		return invalid("melhorHorarioInvalido", models.ValidHorarios)
	}

	if !containsString(models.ValidAssuntos, in.Assunto) {
		return invalid("assuntoInvalido", models.ValidAssuntos)
	}

	if utf8.RuneCountInString(in.Mensagem) < 10 {
		return invalid("mensagemDeveConterPeloMenos10Caracteres")
	}
	if utf8.RuneCountInString(in.Mensagem) > 1000 {
		return invalid("mensagemDeveConterNoMaximo1000Caracteres")
	}

	return nil
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
