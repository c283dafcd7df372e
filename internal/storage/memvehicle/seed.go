package memvehicle

import "github.com/AutoVitrine/AutoVitrine/internal/models"

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }

func seedVehicles() []models.Vehicle {
	return []models.Vehicle{
		{
			ID:              "1",
			Modelo:          "Civic",
			Marca:           "Honda",
			Ano:             2023,
			Preco:           145000,
			ImagemPrincipal: "https://via.placeholder.com/300x169?text=Honda+Civic+2023",
			Quilometragem:   intPtr(5000),
			Cambio:          strPtr("Automático"),
		},
		{
			ID:              "2",
			Modelo:          "Corolla",
			Marca:           "Toyota",
			Ano:             2022,
			Preco:           135000,
			ImagemPrincipal: "https://via.placeholder.com/300x169?text=Toyota+Corolla+2022",
			Quilometragem:   intPtr(15000),
			Cambio:          strPtr("CVT"),
		},
		{
			ID:              "3",
			Modelo:          "Onix",
			Marca:           "Chevrolet",
			Ano:             2023,
			Preco:           85000,
			ImagemPrincipal: "https://via.placeholder.com/300x169?text=Chevrolet+Onix+2023",
			Quilometragem:   intPtr(2000),
			Cambio:          strPtr("Manual"),
		},
		{
			ID:              "4",
			Modelo:          "HB20",
			Marca:           "Hyundai",
			Ano:             2021,
			Preco:           75000,
			ImagemPrincipal: "https://via.placeholder.com/300x169?text=Hyundai+HB20+2021",
			Quilometragem:   intPtr(30000),
			Cambio:          strPtr("Manual"),
		},
		{
			ID:              "5",
			Modelo:          "Compass",
			Marca:           "Jeep",
			Ano:             2023,
			Preco:           185000,
			ImagemPrincipal: "https://via.placeholder.com/300x169?text=Jeep+Compass+2023",
			Quilometragem:   intPtr(8000),
			Cambio:          strPtr("Automático"),
		},
	}
}

// The detail store intentionally covers only part of the summary list;
// listings without a detail record return not-found on the detail route.
func seedDetails() map[string]models.VehicleDetail {
	return map[string]models.VehicleDetail{
		"1": {
			ID:            "1",
			TituloAnuncio: "Honda Civic 2023",
			Preco:         145000,
			StatusVeiculo: "Disponível",
			Fotos: []models.VehiclePhoto{
				{URL: "https://via.placeholder.com/800x600?text=Honda+Civic+2023+Front", Legenda: "Vista frontal", Principal: true},
				{URL: "https://via.placeholder.com/800x600?text=Honda+Civic+2023+Side", Legenda: "Vista lateral"},
				{URL: "https://via.placeholder.com/800x600?text=Honda+Civic+2023+Interior", Legenda: "Interior"},
				{URL: "https://via.placeholder.com/800x600?text=Honda+Civic+2023+Dashboard", Legenda: "Painel"},
			},
			ModoAmpliacao: "ambos",
			NivelZoom:     200,
			Especificacoes: models.VehicleSpecifications{
				Marca:         "Honda",
				Modelo:        "Civic",
				AnoFabricacao: 2023,
				AnoModelo:     2023,
				Quilometragem: 5000,
				Combustivel:   "Flex",
				Cambio:        "Automático",
				Potencia:      "155 cv",
				Cor:           "Prata",
				Portas:        4,
				Carroceria:    "Sedan",
				Motor:         "2.0",
				FinalPlaca:    1,
			},
			ItensSerie: []models.VehicleItem{
				{Nome: "Ar-condicionado digital", Categoria: "Conforto"},
				{Nome: "Direção elétrica", Categoria: "Conforto"},
				{Nome: "Vidros elétricos", Categoria: "Conforto"},
				{Nome: "Travas elétricas", Categoria: "Conforto"},
				{Nome: "Airbag duplo", Categoria: "Segurança"},
				{Nome: "Freios ABS", Categoria: "Segurança"},
				{Nome: "Controle de estabilidade", Categoria: "Segurança"},
				{Nome: "Sensor de estacionamento", Categoria: "Tecnologia"},
				{Nome: "Câmera de ré", Categoria: "Tecnologia"},
				{Nome: "Central multimídia", Categoria: "Tecnologia"},
			},
			Opcionais: []models.VehicleItem{
				{Nome: "Teto solar", Categoria: "Conforto"},
				{Nome: "Bancos de couro", Categoria: "Conforto"},
				{Nome: "Rodas de liga leve", Categoria: "Estética"},
				{Nome: "Faróis de LED", Categoria: "Tecnologia"},
			},
			LimiteItensVisivel: 10,
			Historico: models.VehicleHistory{
				Procedencia:   "Concessionária",
				Proprietarios: 0,
				Garantia:      "3 anos ou 100.000 km",
				Revisoes: []models.VehicleRevision{
					{Data: "2023-06-15", Quilometragem: 5000, Local: "Concessionária Honda"},
				},
				Sinistros: []models.VehicleSinister{},
				LaudoTecnico: models.VehicleTechnicalReport{
					DataInspecao:   "2023-12-01",
					ResultadoGeral: "Aprovado",
				},
			},
			CondicoesVenda: models.VehicleSaleConditions{
				FormasPagamento: []string{"À vista", "Financiamento"},
				CondicoesFinanciamento: &models.VehicleFinancingConditions{
					EntradaMinima: 29000,
					TaxaJuros:     1.99,
					PrazoMaximo:   60,
				},
				AceitaTroca:      true,
				ObservacoesVenda: "Veículo em excelente estado de conservação",
				DocumentacaoNecessaria: []models.VehicleDocumentation{
					{Nome: "RG e CPF", Observacoes: "Original e cópia"},
					{Nome: "Comprovante de residência", Observacoes: "Atualizado (últimos 3 meses)"},
					{Nome: "Comprovante de renda", Observacoes: "Para financiamento"},
				},
				SituacaoDocumental: models.VehicleDocumentalSituation{
					Status:      "Regular",
					Pendencias:  []string{},
					Observacoes: "Documentação completa e regularizada",
				},
			},
			URLCompartilhamento:   "https://catalogo-carros.com/veiculos/honda-civic-2023-1",
			RedesSociais:          []string{"Facebook", "Twitter", "WhatsApp", "Telegram", "Email"},
			TextoCompartilhamento: "Confira este Honda Civic 2023 por R$ 145.000,00",
			VeiculosSimilares: []models.VehicleSimilar{
				{
					ID:              "2",
					Modelo:          "Corolla",
					Marca:           "Toyota",
					Ano:             2022,
					Preco:           135000,
					ImagemPrincipal: "https://via.placeholder.com/300x169?text=Toyota+Corolla+2022",
				},
			},
			CriteriosSimilaridade: []string{"Marca", "Preço", "Categoria"},
			FormatoExibicao:       "carrossel",
			InformacoesCard:       []string{"foto", "marca", "modelo", "ano", "preco"},
		},
		"2": {
			ID:            "2",
			TituloAnuncio: "Toyota Corolla 2022",
			Preco:         135000,
			StatusVeiculo: "Disponível",
			Fotos: []models.VehiclePhoto{
				{URL: "https://via.placeholder.com/800x600?text=Toyota+Corolla+2022+Front", Legenda: "Vista frontal", Principal: true},
				{URL: "https://via.placeholder.com/800x600?text=Toyota+Corolla+2022+Side", Legenda: "Vista lateral"},
				{URL: "https://via.placeholder.com/800x600?text=Toyota+Corolla+2022+Interior", Legenda: "Interior"},
			},
			ModoAmpliacao: "lightbox",
			NivelZoom:     200,
			Especificacoes: models.VehicleSpecifications{
				Marca:         "Toyota",
				Modelo:        "Corolla",
				AnoFabricacao: 2022,
				AnoModelo:     2022,
				Quilometragem: 15000,
				Combustivel:   "Flex",
				Cambio:        "CVT",
				Potencia:      "144 cv",
				Cor:           "Branco",
				Portas:        4,
				Carroceria:    "Sedan",
				Motor:         "2.0",
				FinalPlaca:    2,
			},
			ItensSerie: []models.VehicleItem{
				{Nome: "Ar-condicionado automático", Categoria: "Conforto"},
				{Nome: "Direção elétrica", Categoria: "Conforto"},
				{Nome: "Vidros elétricos", Categoria: "Conforto"},
				{Nome: "Airbag múltiplo", Categoria: "Segurança"},
				{Nome: "Freios ABS", Categoria: "Segurança"},
				{Nome: "Central multimídia", Categoria: "Tecnologia"},
			},
			Opcionais: []models.VehicleItem{
				{Nome: "Bancos de couro", Categoria: "Conforto"},
				{Nome: "Sensor de estacionamento", Categoria: "Tecnologia"},
			},
			LimiteItensVisivel: 10,
			Historico: models.VehicleHistory{
				Procedencia:   "Particular",
				Proprietarios: 1,
				Garantia:      "1 ano restante",
				Revisoes: []models.VehicleRevision{
					{Data: "2022-06-15", Quilometragem: 5000, Local: "Concessionária Toyota"},
					{Data: "2023-01-20", Quilometragem: 15000, Local: "Concessionária Toyota"},
				},
				Sinistros: []models.VehicleSinister{},
				LaudoTecnico: models.VehicleTechnicalReport{
					DataInspecao:   "2023-11-15",
					ResultadoGeral: "Aprovado",
				},
			},
			CondicoesVenda: models.VehicleSaleConditions{
				FormasPagamento: []string{"À vista", "Financiamento", "Consórcio"},
				CondicoesFinanciamento: &models.VehicleFinancingConditions{
					EntradaMinima: 27000,
					TaxaJuros:     2.19,
					PrazoMaximo:   48,
				},
				AceitaTroca:      true,
				ObservacoesVenda: "",
				DocumentacaoNecessaria: []models.VehicleDocumentation{
					{Nome: "RG e CPF", Observacoes: "Original e cópia"},
					{Nome: "Comprovante de residência", Observacoes: "Atualizado"},
				},
				SituacaoDocumental: models.VehicleDocumentalSituation{
					Status:      "Regular",
					Pendencias:  []string{},
					Observacoes: "Documentação em ordem",
				},
			},
			URLCompartilhamento:   "https://catalogo-carros.com/veiculos/toyota-corolla-2022-2",
			RedesSociais:          []string{"Facebook", "WhatsApp", "Email"},
			TextoCompartilhamento: "Confira este Toyota Corolla 2022 por R$ 135.000,00",
			VeiculosSimilares: []models.VehicleSimilar{
				{
					ID:              "1",
					Modelo:          "Civic",
					Marca:           "Honda",
					Ano:             2023,
					Preco:           145000,
					ImagemPrincipal: "https://via.placeholder.com/300x169?text=Honda+Civic+2023",
				},
			},
			CriteriosSimilaridade: []string{"Marca", "Preço", "Categoria"},
			FormatoExibicao:       "carrossel",
			InformacoesCard:       []string{"foto", "marca", "modelo", "ano", "preco"},
		},
	}
}
