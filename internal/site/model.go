package site

import "time"

// Plan is a subscription tier shown on the public pricing page.
type Plan struct {
	Name         string   `json:"name"`
	MonthlyPrice float64  `json:"monthly_price"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular"`
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Plans is the published subscription catalog. It changes with the
// business offer, not with tenant data, so it lives in code.
var Plans = []Plan{
	{
		Name:         "Essencial",
		MonthlyPrice: 89,
		Description:  "Perfeito para estabelecimentos iniciantes",
		Features: []string{
			"1 Estabelecimento",
			"PDV completo",
			"Dashboard básico",
			"Controle de estoque",
			"Suporte por email",
			"Backup automático",
		},
	},
	{
		Name:         "Profissional",
		MonthlyPrice: 149,
		Description:  "Ideal para negócios em crescimento",
		Features: []string{
			"Até 3 Estabelecimentos",
			"PDV avançado",
			"Dashboard completo",
			"Marketing automático",
			"Integração delivery",
			"QR Code cardápio",
			"Suporte prioritário",
			"Relatórios avançados",
		},
		Popular: true,
	},
	{
		Name:         "Enterprise",
		MonthlyPrice: 299,
		Description:  "Para redes e grandes operações",
		Features: []string{
			"Estabelecimentos ilimitados",
			"Gestão centralizada",
			"API personalizada",
			"Suporte 24/7",
			"Treinamento incluso",
			"Customizações",
			"Gerente de conta",
			"SLA garantido",
		},
	},
}
