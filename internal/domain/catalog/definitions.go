package catalog

import (
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
)

func f(v float64) *float64 { return &v }

// Standard 0-5 star scale shared by every rating definition.
var ratingMin, ratingMax = f(0), f(5)

// definitions is the versioned parameter manifest. Order within a category is
// the render order on comparison screens.
var definitions = []Definition{
	// ------------------------------------------------------------------
	// Informações Gerais
	// ------------------------------------------------------------------
	{
		Name:        "Ano de fundação",
		Category:    CategoryGeneral,
		Type:        params.KindNumber,
		Description: "Ano em que a casa de apostas iniciou as operações",
	},
	{
		Name:        "País de origem",
		Category:    CategoryGeneral,
		Type:        params.KindText,
		Description: "Sede da empresa controladora",
	},
	{
		Name:     "Atuação",
		Category: CategoryGeneral,
		Type:     params.KindSelect,
		Options:  []string{"Nacional", "Internacional", "Ambos"},
	},
	{
		Name:     "Idioma português",
		Category: CategoryGeneral,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Atendimento 24h",
		Category: CategoryGeneral,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Número de esportes",
		Category:    CategoryGeneral,
		Type:        params.KindNumber,
		Description: "Quantidade de modalidades esportivas cobertas",
	},
	{
		Name:     "Transmissão ao vivo",
		Category: CategoryGeneral,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Apostas em e-sports",
		Category: CategoryGeneral,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Cadastro simplificado",
		Category:    CategoryGeneral,
		Type:        params.KindBoolean,
		Description: "Conta utilizável em menos de cinco minutos",
	},

	// ------------------------------------------------------------------
	// Licença & Segurança
	// ------------------------------------------------------------------
	{
		Name:     "Licença brasileira (SPA)",
		Category: CategoryLicense,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Órgão regulador",
		Category:    CategoryLicense,
		Type:        params.KindSelect,
		Options:     []string{"SPA/MF", "MGA", "Curaçao", "Gibraltar", "UKGC", "Outro"},
		Description: "Autoridade emissora da licença principal",
	},
	{
		Name:     "Certificado SSL",
		Category: CategoryLicense,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Verificação em duas etapas",
		Category: CategoryLicense,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Política de jogo responsável",
		Category: CategoryLicense,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Adequação à LGPD",
		Category: CategoryLicense,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Nota de segurança",
		Category: CategoryLicense,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Bônus & Promoções
	// ------------------------------------------------------------------
	{
		Name:        "Bônus de boas-vindas",
		Category:    CategoryBonuses,
		Type:        params.KindCurrency,
		Unit:        "R$",
		Description: "Valor máximo do bônus de primeiro depósito",
	},
	{
		Name:        "Rollover do bônus",
		Category:    CategoryBonuses,
		Type:        params.KindNumber,
		Unit:        "x",
		Description: "Multiplicador de apostas exigido para liberar o bônus",
	},
	{
		Name:     "Odds mínimas para rollover",
		Category: CategoryBonuses,
		Type:     params.KindNumber,
	},
	{
		Name:     "Prazo do rollover",
		Category: CategoryBonuses,
		Type:     params.KindNumber,
		Unit:     "dias",
	},
	{
		Name:     "Aposta grátis",
		Category: CategoryBonuses,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Cashback",
		Category: CategoryBonuses,
		Type:     params.KindPercentage,
		Unit:     "%",
	},
	{
		Name:     "Programa de fidelidade",
		Category: CategoryBonuses,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Bônus sem depósito",
		Category: CategoryBonuses,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Depósito mínimo para bônus",
		Category:    CategoryBonuses,
		Type:        params.KindCurrency,
		Unit:        "R$",
		Description: "Menor depósito que ainda ativa o bônus de boas-vindas",
	},
	{
		Name:     "Nota das promoções",
		Category: CategoryBonuses,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Odds & Mercados
	// ------------------------------------------------------------------
	{
		Name:        "Margem média",
		Category:    CategoryOdds,
		Type:        params.KindPercentage,
		Unit:        "%",
		Description: "Margem embutida média nos principais mercados de futebol",
	},
	{
		Name:        "Payout médio",
		Category:    CategoryOdds,
		Type:        params.KindPercentage,
		Unit:        "%",
		Description: "Retorno teórico médio ao apostador",
	},
	{
		Name:     "Apostas ao vivo",
		Category: CategoryOdds,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Cash out",
		Category: CategoryOdds,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Criador de apostas",
		Category: CategoryOdds,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Mercados por partida",
		Category:    CategoryOdds,
		Type:        params.KindNumber,
		Description: "Média de mercados ofertados em um jogo de futebol de elite",
	},
	{
		Name:     "Super odds",
		Category: CategoryOdds,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Apostas de sistema",
		Category: CategoryOdds,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Nota das odds",
		Category: CategoryOdds,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Pagamentos & Financeiro
	// ------------------------------------------------------------------
	{
		Name:     "Depósito mínimo",
		Category: CategoryPayments,
		Type:     params.KindCurrency,
		Unit:     "R$",
	},
	{
		Name:     "Depósito máximo",
		Category: CategoryPayments,
		Type:     params.KindCurrency,
		Unit:     "R$",
	},
	{
		Name:     "Saque mínimo",
		Category: CategoryPayments,
		Type:     params.KindCurrency,
		Unit:     "R$",
	},
	{
		Name:     "Saque máximo diário",
		Category: CategoryPayments,
		Type:     params.KindCurrency,
		Unit:     "R$",
	},
	{
		Name:        "Prazo de saque via Pix",
		Category:    CategoryPayments,
		Type:        params.KindNumber,
		Unit:        "min",
		Description: "Tempo médio até o valor cair na conta",
	},
	{
		Name:     "Aceita Pix",
		Category: CategoryPayments,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Aceita cartão de crédito",
		Category: CategoryPayments,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Aceita criptomoedas",
		Category: CategoryPayments,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Taxa de saque",
		Category: CategoryPayments,
		Type:     params.KindPercentage,
		Unit:     "%",
	},
	{
		Name:     "Aceita carteiras digitais",
		Category: CategoryPayments,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Aceita transferência bancária",
		Category: CategoryPayments,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Nota de pagamentos",
		Category: CategoryPayments,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Plataforma & Usabilidade
	// ------------------------------------------------------------------
	{
		Name:     "Aplicativo Android",
		Category: CategoryPlatform,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Aplicativo iOS",
		Category: CategoryPlatform,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Tipo de plataforma",
		Category:    CategoryPlatform,
		Type:        params.KindSelect,
		Options:     []string{"Própria", "Kambi", "Altenar", "BetConstruct", "Playtech", "Outra"},
		Description: "Fornecedor do sportsbook",
	},
	{
		Name:     "Modo escuro",
		Category: CategoryPlatform,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Tempo de carregamento",
		Category:    CategoryPlatform,
		Type:        params.KindNumber,
		Unit:        "s",
		Description: "Tempo médio de carregamento da página inicial",
	},
	{
		Name:     "Estatísticas ao vivo",
		Category: CategoryPlatform,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Notificações push",
		Category: CategoryPlatform,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Nota de usabilidade",
		Category: CategoryPlatform,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Suporte ao Cliente
	// ------------------------------------------------------------------
	{
		Name:     "Chat ao vivo",
		Category: CategorySupport,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Suporte por telefone",
		Category: CategorySupport,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Suporte por e-mail",
		Category: CategorySupport,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Tempo de resposta do chat",
		Category:    CategorySupport,
		Type:        params.KindNumber,
		Unit:        "min",
		Description: "Tempo médio até a primeira resposta humana",
	},
	{
		Name:     "Canais de atendimento",
		Category: CategorySupport,
		Type:     params.KindNumber,
	},
	{
		Name:     "Suporte via WhatsApp",
		Category: CategorySupport,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Central de ajuda",
		Category: CategorySupport,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Nota do suporte",
		Category: CategorySupport,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},

	// ------------------------------------------------------------------
	// Reputação & Avaliação
	// ------------------------------------------------------------------
	{
		Name:        "Nota no Reclame Aqui",
		Category:    CategoryReputation,
		Type:        params.KindNumber,
		Description: "Nota pública na plataforma de reclamações (0-10)",
	},
	{
		Name:        "Índice de resolução",
		Category:    CategoryReputation,
		Type:        params.KindPercentage,
		Unit:        "%",
		Description: "Percentual de reclamações resolvidas",
	},
	{
		Name:     "Selo de confiança",
		Category: CategoryReputation,
		Type:     params.KindBoolean,
	},
	{
		Name:     "Patrocina clube brasileiro",
		Category: CategoryReputation,
		Type:     params.KindBoolean,
	},
	{
		Name:        "Anos de mercado no Brasil",
		Category:    CategoryReputation,
		Type:        params.KindNumber,
		Unit:        "anos",
		Description: "Tempo de operação com foco no público brasileiro",
	},
	{
		Name:     "Nota da comunidade",
		Category: CategoryReputation,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},
	{
		Name:     "Nota geral da redação",
		Category: CategoryReputation,
		Type:     params.KindRating,
		Min:      ratingMin,
		Max:      ratingMax,
	},
}
