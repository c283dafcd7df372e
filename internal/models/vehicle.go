package models

// Sort orders accepted by the listing endpoint. Relevancia keeps the
// catalog insertion order untouched.
const (
	SortRelevancia = "relevancia"
	SortPrecoAsc   = "preco_asc"
	SortPrecoDesc  = "preco_desc"
	SortAnoDesc    = "ano_desc"
	SortAnoAsc     = "ano_asc"
	SortModeloAsc  = "modelo_asc"
	SortModeloDesc = "modelo_desc"
)

// ValidSortOrders lists every accepted sortBy value.
var ValidSortOrders = []string{
	SortRelevancia,
	SortPrecoAsc,
	SortPrecoDesc,
	SortAnoDesc,
	SortAnoAsc,
	SortModeloAsc,
	SortModeloDesc,
}

// ValidPageSizes is the closed set of page sizes the listing accepts.
var ValidPageSizes = []int{12, 24, 36, 48}

// ValidCambios is the closed set of transmission types.
var ValidCambios = []string{"Manual", "Automático", "CVT", "Semi-automático"}

type Vehicle struct {
	ID              string   `json:"id"`
	Modelo          string   `json:"modelo"`
	Marca           string   `json:"marca"`
	Ano             int      `json:"ano"`
	Preco           float64  `json:"preco"`
	ImagemPrincipal string   `json:"imagemPrincipal"`
	Quilometragem   *int     `json:"quilometragem"`
	Cambio          *string  `json:"cambio"`
}

// VehicleFilters is a conjunctive predicate set. Nil/empty fields are
// unconstrained; multi-value fields are OR within the field.
type VehicleFilters struct {
	Marcas   []string
	Modelos  []string
	AnoMin   *int
	AnoMax   *int
	PrecoMin *float64
	PrecoMax *float64
	Cambios  []string
}

type ListParams struct {
	Page     int
	PageSize int
	Filters  VehicleFilters
	SortBy   string
}

type ListResult struct {
	Vehicles   []Vehicle `json:"vehicles"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

type FilterOptions struct {
	Marcas  []string `json:"marcas"`
	Modelos []string `json:"modelos"`
	Anos    []int    `json:"anos"`
	Cambios []string `json:"cambios"`
}

type VehiclePhoto struct {
	URL       string `json:"url"`
	Legenda   string `json:"legenda"`
	Principal bool   `json:"principal"`
}

type VehicleSpecifications struct {
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	AnoFabricacao int    `json:"anoFabricacao"`
	AnoModelo     int    `json:"anoModelo"`
	Quilometragem int    `json:"quilometragem"`
	Combustivel   string `json:"combustivel"`
	Cambio        string `json:"cambio"`
	Potencia      string `json:"potencia"`
	Cor           string `json:"cor"`
	Portas        int    `json:"portas"`
	Carroceria    string `json:"carroceria"`
	Motor         string `json:"motor"`
	FinalPlaca    int    `json:"finalPlaca"`
}

type VehicleItem struct {
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

type VehicleRevision struct {
	Data          string `json:"data"`
	Quilometragem int    `json:"quilometragem"`
	Local         string `json:"local"`
}

type VehicleSinister struct {
	Data      string `json:"data"`
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
}

type VehicleTechnicalReport struct {
	DataInspecao   string `json:"dataInspecao"`
	ResultadoGeral string `json:"resultadoGeral"`
}

type VehicleHistory struct {
	Procedencia   string                 `json:"procedencia"`
	Proprietarios int                    `json:"proprietarios"`
	Garantia      string                 `json:"garantia"`
	Revisoes      []VehicleRevision      `json:"revisoes"`
	Sinistros     []VehicleSinister      `json:"sinistros"`
	LaudoTecnico  VehicleTechnicalReport `json:"laudoTecnico"`
}

type VehicleFinancingConditions struct {
	EntradaMinima float64 `json:"entradaMinima"`
	TaxaJuros     float64 `json:"taxaJuros"`
	PrazoMaximo   int     `json:"prazoMaximo"`
}

type VehicleDocumentation struct {
	Nome        string `json:"nome"`
	Observacoes string `json:"observacoes"`
}

type VehicleDocumentalSituation struct {
	Status      string   `json:"status"`
	Pendencias  []string `json:"pendencias"`
	Observacoes string   `json:"observacoes"`
}

type VehicleSaleConditions struct {
	FormasPagamento         []string                    `json:"formasPagamento"`
	CondicoesFinanciamento  *VehicleFinancingConditions `json:"condicoesFinanciamento,omitempty"`
	AceitaTroca             bool                        `json:"aceitaTroca"`
	ObservacoesVenda        string                      `json:"observacoesVenda"`
	DocumentacaoNecessaria  []VehicleDocumentation      `json:"documentacaoNecessaria"`
	SituacaoDocumental      VehicleDocumentalSituation  `json:"situacaoDocumental"`
}

type VehicleSimilar struct {
	ID              string  `json:"id"`
	Modelo          string  `json:"modelo"`
	Marca           string  `json:"marca"`
	Ano             int     `json:"ano"`
	Preco           float64 `json:"preco"`
	ImagemPrincipal string  `json:"imagemPrincipal"`
}

// VehicleDetail is the full advert view, keyed 1:1 with Vehicle by id.
type VehicleDetail struct {
	ID                    string                 `json:"id"`
	TituloAnuncio         string                 `json:"tituloAnuncio"`
	Preco                 float64                `json:"preco"`
	StatusVeiculo         string                 `json:"statusVeiculo"`
	Fotos                 []VehiclePhoto         `json:"fotos"`
	ModoAmpliacao         string                 `json:"modoAmpliacao"`
	NivelZoom             int                    `json:"nivelZoom"`
	Especificacoes        VehicleSpecifications  `json:"especificacoes"`
	ItensSerie            []VehicleItem          `json:"itensSerie"`
	Opcionais             []VehicleItem          `json:"opcionais"`
	LimiteItensVisivel    int                    `json:"limiteItensVisivel"`
	Historico             VehicleHistory         `json:"historico"`
	CondicoesVenda        VehicleSaleConditions  `json:"condicoesVenda"`
	URLCompartilhamento   string                 `json:"urlCompartilhamento"`
	RedesSociais          []string               `json:"redesSociais"`
	TextoCompartilhamento string                 `json:"textoCompartilhamento"`
	VeiculosSimilares     []VehicleSimilar       `json:"veiculosSimilares"`
	CriteriosSimilaridade []string               `json:"criteriosSimilaridade"`
	FormatoExibicao       string                 `json:"formatoExibicao"`
	InformacoesCard       []string               `json:"informacoesCard"`
}
