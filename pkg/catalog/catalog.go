package catalog

import (
	"sync"

	"github.com/entrysight/entrysight/pkg/domain/model"
	"github.com/entrysight/entrysight/pkg/domain/types"
)

// Default returns the built-in assessment catalog. The catalog is
// constructed once and shared; callers must treat it as read-only.
func Default() *model.Catalog {
	return defaultCatalog()
}

var defaultCatalog = sync.OnceValue(build)

func build() *model.Catalog {
	return &model.Catalog{Categories: []model.Category{
		regulatoryScrutiny(),
		politicalGeopolitical(),
		dataSecurity(),
		ipProtection(),
		reputational(),
		nationalSecurity(),
		supplyChain(),
		marketCompetition(),
		laborPractices(),
		environmental(),
	}}
}

func regulatoryScrutiny() model.Category {
	return model.Category{
		ID:          "regulatory-scrutiny",
		Name:        "Regulatory Scrutiny",
		Description: "CFIUS reviews, export controls, and sector-specific compliance analysis",
		Subcategories: []model.Subcategory{
			{
				ID:          "cfius-review",
				Name:        "CFIUS Review Likelihood",
				Description: "Evaluation of Committee on Foreign Investment in the United States review probability",
				Questions: []model.Question{
					{
						ID:        "cfius-1",
						Text:      "Does your company operate in a critical infrastructure sector (telecommunications, energy, finance, etc.)?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "cfius-2",
						Text:     "What percentage of your US operations would involve sensitive data or technology?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"0-25%", "26-50%", "51-75%", "76-100%"},
						Weight:   0.25,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:       "cfius-3",
						Text:     "On a scale of 0-10, how likely is government access to your data in your home country?",
						Type:     types.QuestionTypeRating,
						Weight:   0.25,
						Required: true,
					},
					{
						ID:        "cfius-4",
						Text:      "Does your company have any government ownership or control (direct or indirect)?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.2,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "export-controls",
				Name:        "Export Control Compliance",
				Description: "Assessment of dual-use technology and export regulation compliance",
				Questions: []model.Question{
					{
						ID:        "export-1",
						Text:      "Does your technology have potential military or dual-use applications?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "export-2",
						Text:     "How familiar is your company with US export control regulations (EAR, ITAR)?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Not familiar", "Somewhat familiar", "Very familiar", "Expert level"},
						Weight:   0.25,
						Required: true,
						Order:    types.OrderAscending,
					},
					{
						ID:        "export-3",
						Text:      "Has your company ever been investigated or sanctioned for export violations?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "sector-compliance",
				Name:        "Sector-Specific Regulations",
				Description: "Industry-specific regulatory requirements and compliance history",
				Questions: []model.Question{
					{
						ID:   "sector-1",
						Text: "Which industry sector best describes your business?",
						Type: types.QuestionTypeSelect,
						Options: []string{
							"Technology/Software",
							"Telecommunications",
							"Financial Services",
							"Healthcare",
							"Energy",
							"Manufacturing",
							"Other",
						},
						Weight:   0.2,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:       "sector-2",
						Text:     "Rate your compliance record in your home country (0=poor, 10=excellent)",
						Type:     types.QuestionTypeRating,
						Weight:   0.4,
						Required: true,
					},
					{
						ID:        "sector-3",
						Text:      "Do you have existing US regulatory approvals or licenses?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func politicalGeopolitical() model.Category {
	return model.Category{
		ID:          "political-geopolitical",
		Name:        "Political & Geopolitical Risk",
		Description: "Trade tensions, sanctions, tariffs, and political climate assessment",
		Subcategories: []model.Subcategory{
			{
				ID:          "trade-tensions",
				Name:        "Trade Relations",
				Description: "Current state of trade relations between countries",
				Questions: []model.Question{
					{
						ID:       "trade-1",
						Text:     "What is your company's country of origin?",
						Type:     types.QuestionTypeText,
						Weight:   0.3,
						Required: true,
					},
					{
						ID:       "trade-2",
						Text:     "Rate the current trade relationship between your country and the US (0=hostile, 10=excellent)",
						Type:     types.QuestionTypeRating,
						Weight:   0.4,
						Required: true,
					},
					{
						ID:        "trade-3",
						Text:      "Has your company been affected by tariffs or trade restrictions in the past 5 years?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "sanctions-risk",
				Name:        "Sanctions Exposure",
				Description: "Risk of sanctions or trade restrictions",
				Questions: []model.Question{
					{
						ID:        "sanctions-1",
						Text:      "Is your country currently under any US sanctions or trade restrictions?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: false,
					},
					{
						ID:        "sanctions-2",
						Text:      "Does your company have business relationships with sanctioned entities?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "political-climate",
				Name:        "Political Environment",
				Description: "Current political attitudes toward foreign investment",
				Questions: []model.Question{
					{
						ID:       "political-1",
						Text:     "Rate the current US political climate toward foreign investment from your country (0=hostile, 10=welcoming)",
						Type:     types.QuestionTypeRating,
						Weight:   0.4,
						Required: true,
					},
					{
						ID:       "political-2",
						Text:     "Has your company been mentioned in political discourse or media in the US?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Never", "Rarely (1-2 times)", "Occasionally (3-10 times)", "Frequently (10+ times)"},
						Weight:   0.3,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:        "political-3",
						Text:      "Does your company have established relationships with US political or business leaders?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func dataSecurity() model.Category {
	return model.Category{
		ID:          "data-security",
		Name:        "Data Security & Privacy",
		Description: "CCPA compliance, data localization, and cybersecurity evaluation",
		Subcategories: []model.Subcategory{
			{
				ID:          "privacy-compliance",
				Name:        "Privacy Law Compliance",
				Description: "Adherence to US privacy regulations (CCPA, state laws)",
				Questions: []model.Question{
					{
						ID:       "privacy-1",
						Text:     "Is your company familiar with California Consumer Privacy Act (CCPA) requirements?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Not familiar", "Somewhat familiar", "Very familiar", "Fully compliant"},
						Weight:   0.3,
						Required: true,
						Order:    types.OrderAscending,
					},
					{
						ID:        "privacy-2",
						Text:      "Does your company currently comply with GDPR or similar privacy regulations?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "privacy-3",
						Text:     "Rate your data privacy program maturity (0=none, 10=world-class)",
						Type:     types.QuestionTypeRating,
						Weight:   0.35,
						Required: true,
					},
				},
			},
			{
				ID:          "data-localization",
				Name:        "Data Storage & Localization",
				Description: "Where and how customer data will be stored",
				Questions: []model.Question{
					{
						ID:       "data-loc-1",
						Text:     "Where would US customer data be primarily stored?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"US only", "US and home country", "Home country only", "Distributed globally"},
						Weight:   0.4,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:        "data-loc-2",
						Text:      "Can you guarantee that US data will not be accessible from your home country?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "data-loc-3",
						Text:      "Will you use US-based cloud service providers for US operations?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
				},
			},
			{
				ID:          "cybersecurity",
				Name:        "Cybersecurity Practices",
				Description: "Security infrastructure and incident history",
				Questions: []model.Question{
					{
						ID:        "cyber-1",
						Text:      "Does your company have ISO 27001 or SOC 2 certification?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "cyber-2",
						Text:      "Has your company experienced any data breaches in the past 5 years?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "cyber-3",
						Text:     "Rate your cybersecurity program maturity (0=minimal, 10=enterprise-grade)",
						Type:     types.QuestionTypeRating,
						Weight:   0.35,
						Required: true,
					},
				},
			},
		},
	}
}

func ipProtection() model.Category {
	return model.Category{
		ID:          "ip-protection",
		Name:        "Intellectual Property Protection",
		Description: "IP enforcement mechanisms and dispute history analysis",
		Subcategories: []model.Subcategory{
			{
				ID:          "ip-compliance",
				Name:        "IP Rights & Compliance",
				Description: "Company IP portfolio and respect for third-party IP",
				Questions: []model.Question{
					{
						ID:        "ip-1",
						Text:      "Does your company hold US patents or trademarks?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.25,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "ip-2",
						Text:      "Has your company ever been involved in IP litigation or disputes?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "ip-3",
						Text:     "Rate your home country's IP protection enforcement (0=weak, 10=strong)",
						Type:     types.QuestionTypeRating,
						Weight:   0.4,
						Required: true,
					},
				},
			},
			{
				ID:          "technology-transfer",
				Name:        "Technology Transfer Controls",
				Description: "Mechanisms to prevent unauthorized technology transfer",
				Questions: []model.Question{
					{
						ID:        "tech-trans-1",
						Text:      "Does your company have internal policies preventing unauthorized technology transfer?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "tech-trans-2",
						Text:     "Would US-developed technology be shared with your home country operations?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Never", "With restrictions", "Freely", "Uncertain"},
						Weight:   0.6,
						Required: true,
						Order:    types.OrderDescending,
					},
				},
			},
		},
	}
}

func reputational() model.Category {
	return model.Category{
		ID:          "reputational",
		Name:        "Reputational Risk",
		Description: "Media coverage, public opinion, and sentiment analysis",
		Subcategories: []model.Subcategory{
			{
				ID:          "media-coverage",
				Name:        "Media Presence",
				Description: "Nature and sentiment of media coverage",
				Questions: []model.Question{
					{
						ID:       "media-1",
						Text:     "How would you characterize US media coverage of your company?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Mostly positive", "Neutral", "Mixed", "Mostly negative", "No coverage"},
						Weight:   0.4,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:        "media-2",
						Text:      "Has your company faced controversies in the past 3 years?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "media-3",
						Text:     "Rate your company's brand reputation in your home market (0=poor, 10=excellent)",
						Type:     types.QuestionTypeRating,
						Weight:   0.25,
						Required: true,
					},
				},
			},
			{
				ID:          "public-sentiment",
				Name:        "Public Perception",
				Description: "US consumer and stakeholder attitudes",
				Questions: []model.Question{
					{
						ID:        "sentiment-1",
						Text:      "Do you have existing US customers or users?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "sentiment-2",
						Text:     "Rate expected US consumer receptiveness to your brand (0=hostile, 10=enthusiastic)",
						Type:     types.QuestionTypeRating,
						Weight:   0.35,
						Required: true,
					},
					{
						ID:        "sentiment-3",
						Text:      "Does your company actively engage in corporate social responsibility?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func nationalSecurity() model.Category {
	return model.Category{
		ID:          "national-security",
		Name:        "National Security Concerns",
		Description: "Critical infrastructure involvement and technology transfer concerns",
		Subcategories: []model.Subcategory{
			{
				ID:          "critical-infrastructure",
				Name:        "Critical Infrastructure Involvement",
				Description: "Potential impact on US critical infrastructure",
				Questions: []model.Question{
					{
						ID:        "crit-infra-1",
						Text:      "Would your US operations involve critical infrastructure?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: false,
					},
					{
						ID:   "crit-infra-2",
						Text: "Which sectors would your operations touch?",
						Type: types.QuestionTypeSelect,
						Options: []string{
							"Energy",
							"Transportation",
							"Communications",
							"Financial services",
							"Defense industrial base",
							"Healthcare",
							"None of the above",
						},
						Weight:   0.35,
						Required: true,
						Order:    types.OrderAscending,
					},
					{
						ID:        "crit-infra-3",
						Text:      "Would your operations have access to sensitive US infrastructure data?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.25,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "security-clearance",
				Name:        "Security Clearances",
				Description: "Need for security clearances and background checks",
				Questions: []model.Question{
					{
						ID:        "clearance-1",
						Text:      "Would your US employees require security clearances?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: false,
					},
					{
						ID:        "clearance-2",
						Text:      "Are you willing to undergo thorough background checks for key personnel?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func supplyChain() model.Category {
	return model.Category{
		ID:          "supply-chain",
		Name:        "Supply Chain Transparency",
		Description: "Supply chain visibility and dependency risks",
		Subcategories: []model.Subcategory{
			{
				ID:          "supplier-disclosure",
				Name:        "Supplier Transparency",
				Description: "Ability to disclose and verify supply chain",
				Questions: []model.Question{
					{
						ID:        "supply-1",
						Text:      "Can you provide full transparency of your supply chain?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "supply-2",
						Text:     "What percentage of your suppliers are located in your home country?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"0-25%", "26-50%", "51-75%", "76-100%"},
						Weight:   0.35,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:        "supply-3",
						Text:      "Are any of your critical suppliers state-owned or controlled?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "sourcing-alternatives",
				Name:        "Alternative Sourcing",
				Description: "Ability to diversify supply sources",
				Questions: []model.Question{
					{
						ID:        "alt-source-1",
						Text:      "Could you source critical components from US or allied suppliers if required?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "alt-source-2",
						Text:     "Rate the flexibility of your supply chain (0=rigid, 10=highly flexible)",
						Type:     types.QuestionTypeRating,
						Weight:   0.5,
						Required: true,
					},
				},
			},
		},
	}
}

func marketCompetition() model.Category {
	return model.Category{
		ID:          "market-competition",
		Name:        "Market Competition & Behavior",
		Description: "Competitive practices and anti-competitive behavior assessment",
		Subcategories: []model.Subcategory{
			{
				ID:          "competitive-practices",
				Name:        "Competitive Conduct",
				Description: "History of fair competition and antitrust compliance",
				Questions: []model.Question{
					{
						ID:        "compete-1",
						Text:      "Has your company been investigated for anti-competitive practices?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: false,
					},
					{
						ID:        "compete-2",
						Text:      "Does your company receive government subsidies or preferential treatment?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "compete-3",
						Text:     "Rate your market position in your home country (0=small player, 10=dominant)",
						Type:     types.QuestionTypeRating,
						Weight:   0.25,
						Required: true,
					},
				},
			},
			{
				ID:          "pricing-strategy",
				Name:        "Pricing & Market Entry",
				Description: "Pricing strategy and market entry approach",
				Questions: []model.Question{
					{
						ID:       "pricing-1",
						Text:     "How would you describe your US market entry pricing strategy?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"Premium pricing", "Market rate", "Competitive discount", "Aggressive undercutting"},
						Weight:   0.5,
						Required: true,
						Order:    types.OrderDescending,
					},
					{
						ID:        "pricing-2",
						Text:      "Are you willing to compete on equal footing with US competitors?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.5,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func laborPractices() model.Category {
	return model.Category{
		ID:          "labor-practices",
		Name:        "Labor & Employment Practices",
		Description: "Employment standards, worker rights, and ethical labor practices",
		Subcategories: []model.Subcategory{
			{
				ID:          "worker-rights",
				Name:        "Worker Rights & Standards",
				Description: "Compliance with labor rights and working conditions",
				Questions: []model.Question{
					{
						ID:        "labor-1",
						Text:      "Does your company comply with ILO (International Labour Organization) standards?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "labor-2",
						Text:      "Has your company faced labor disputes or violations in the past 5 years?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
					{
						ID:       "labor-3",
						Text:     "Rate your workplace safety record (0=poor, 10=excellent)",
						Type:     types.QuestionTypeRating,
						Weight:   0.35,
						Required: true,
					},
				},
			},
			{
				ID:          "us-employment",
				Name:        "US Employment Plans",
				Description: "Plans for hiring and treating US workers",
				Questions: []model.Question{
					{
						ID:       "us-employ-1",
						Text:     "What percentage of your US workforce would be hired locally?",
						Type:     types.QuestionTypeSelect,
						Options:  []string{"0-25%", "26-50%", "51-75%", "76-100%"},
						Weight:   0.4,
						Required: true,
						Order:    types.OrderAscending,
					},
					{
						ID:        "us-employ-2",
						Text:      "Will you offer compensation competitive with US market rates?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "us-employ-3",
						Text:      "Are you committed to US labor law compliance?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}

func environmental() model.Category {
	return model.Category{
		ID:          "environmental",
		Name:        "Environmental & Social Governance",
		Description: "ESG commitments, environmental impact, and sustainability practices",
		Subcategories: []model.Subcategory{
			{
				ID:          "environmental-impact",
				Name:        "Environmental Stewardship",
				Description: "Environmental practices and commitments",
				Questions: []model.Question{
					{
						ID:        "env-1",
						Text:      "Does your company have published ESG (Environmental, Social, Governance) goals?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.25,
						Required:  true,
						Favorable: true,
					},
					{
						ID:       "env-2",
						Text:     "Rate your company's environmental track record (0=poor, 10=leader)",
						Type:     types.QuestionTypeRating,
						Weight:   0.4,
						Required: true,
					},
					{
						ID:        "env-3",
						Text:      "Has your company faced environmental violations or fines?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.35,
						Required:  true,
						Favorable: false,
					},
				},
			},
			{
				ID:          "sustainability",
				Name:        "Sustainability Practices",
				Description: "Long-term sustainability and climate commitments",
				Questions: []model.Question{
					{
						ID:        "sustain-1",
						Text:      "Does your company have carbon neutrality or net-zero commitments?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.4,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "sustain-2",
						Text:      "Are you willing to comply with US environmental regulations that may be stricter than your home country?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
					{
						ID:        "sustain-3",
						Text:      "Do you have third-party verified sustainability certifications?",
						Type:      types.QuestionTypeBoolean,
						Weight:    0.3,
						Required:  true,
						Favorable: true,
					},
				},
			},
		},
	}
}
