package quiz

var styleQuestions = []Question{
	{ID: 1, Question: "Como você prefere se vestir no dia a dia?", Options: []Option{
		{Text: "Confortável e prático", Value: "casual", Icon: "👕"},
		{Text: "Elegante e sofisticado", Value: "classic", Icon: "👔"},
		{Text: "Criativo e único", Value: "bohemian", Icon: "🌸"},
		{Text: "Moderno e minimalista", Value: "minimal", Icon: "⚪"},
	}},
	{ID: 2, Question: "Qual ambiente mais combina com você?", Options: []Option{
		{Text: "Café aconchegante", Value: "bohemian", Icon: "☕"},
		{Text: "Escritório corporativo", Value: "classic", Icon: "🏢"},
		{Text: "Parque ao ar livre", Value: "casual", Icon: "🌳"},
		{Text: "Galeria de arte moderna", Value: "minimal", Icon: "🎨"},
	}},
	{ID: 3, Question: "Qual peça você nunca dispensaria no guarda-roupa?", Options: []Option{
		{Text: "Jeans confortável", Value: "casual", Icon: "👖"},
		{Text: "Blazer bem cortado", Value: "classic", Icon: "🧥"},
		{Text: "Vestido fluido", Value: "bohemian", Icon: "👗"},
		{Text: "Camiseta básica perfeita", Value: "minimal", Icon: "👕"},
	}},
	{ID: 4, Question: "Como você escolhe suas roupas pela manhã?", Options: []Option{
		{Text: "Pego o que está mais à mão", Value: "casual", Icon: "🤷"},
		{Text: "Planejo com antecedência", Value: "classic", Icon: "📅"},
		{Text: "Vou pelo humor do dia", Value: "bohemian", Icon: "🌈"},
		{Text: "Tenho um uniforme pessoal", Value: "minimal", Icon: "👤"},
	}},
	{ID: 5, Question: "Qual sua atitude em relação às tendências?", Options: []Option{
		{Text: "Adapto ao meu estilo pessoal", Value: "casual", Icon: "🔄"},
		{Text: "Prefiro peças atemporais", Value: "classic", Icon: "⏰"},
		{Text: "Adoro experimentar novidades", Value: "bohemian", Icon: "✨"},
		{Text: "Ignoro completamente", Value: "minimal", Icon: "🚫"},
	}},
	{ID: 6, Question: "Qual seu acessório favorito?", Options: []Option{
		{Text: "Tênis confortável", Value: "casual", Icon: "👟"},
		{Text: "Relógio clássico", Value: "classic", Icon: "⌚"},
		{Text: "Joias artesanais", Value: "bohemian", Icon: "💍"},
		{Text: "Óculos de design", Value: "minimal", Icon: "🕶️"},
	}},
	{ID: 7, Question: "Como você se sente melhor vestida?", Options: []Option{
		{Text: "Quando posso me mover livremente", Value: "casual", Icon: "🏃"},
		{Text: "Quando projeto confiança", Value: "classic", Icon: "💪"},
		{Text: "Quando expresso minha criatividade", Value: "bohemian", Icon: "🎭"},
		{Text: "Quando tudo está em harmonia", Value: "minimal", Icon: "☯️"},
	}},
}

var styleProfiles = map[string]StyleProfile{
	"casual": {
		Key:         "casual",
		Name:        "Estilo Casual Chic",
		Description: "Você valoriza o conforto sem abrir mão do estilo. Sua elegância vem da naturalidade e praticidade.",
		Characteristics: []string{
			"Prioriza conforto e funcionalidade",
			"Gosta de peças versáteis e práticas",
			"Prefere looks descomplicados",
			"Valoriza qualidade sobre quantidade",
		},
		KeyPieces: []string{
			"Jeans de qualidade",
			"Camisetas e blusas básicas",
			"Tênis estilosos",
			"Cardigã ou jaqueta jeans",
			"Vestidos simples e confortáveis",
		},
		Colors: []string{
			"Neutros: branco, preto, cinza",
			"Azul denim",
			"Tons terrosos: bege, caramelo",
			"Toques de cor: coral, verde menta",
		},
		Accessories: []string{
			"Bolsas práticas e funcionais",
			"Tênis ou sapatilhas confortáveis",
			"Óculos de sol clássicos",
			"Joias delicadas e simples",
		},
		Celebrities: []string{"Jennifer Aniston", "Meghan Markle", "Gigi Hadid", "Emma Stone"},
		Tips: []string{
			"Invista em peças básicas de qualidade",
			"Crie um 'uniforme' pessoal com suas peças favoritas",
			"Adicione um toque especial com acessórios",
			"Mantenha o guarda-roupa organizado e funcional",
		},
	},
	"classic": {
		Key:         "classic",
		Name:        "Estilo Clássico Elegante",
		Description: "Você aprecia a elegância atemporal e a sofisticação. Seu estilo é refinado e sempre apropriado.",
		Characteristics: []string{
			"Prefere peças atemporais",
			"Valoriza qualidade e acabamento",
			"Gosta de looks estruturados",
			"Aprecia elegância discreta",
		},
		KeyPieces: []string{
			"Blazer bem cortado",
			"Camisa branca impecável",
			"Calça social ou saia lápis",
			"Vestido tubinho",
			"Trench coat clássico",
		},
		Colors: []string{
			"Neutros sofisticados: preto, branco, cinza",
			"Azul marinho",
			"Camel e bege",
			"Toques de cor: vermelho, azul royal",
		},
		Accessories: []string{
			"Bolsa estruturada de couro",
			"Sapatos de salto clássicos",
			"Relógio elegante",
			"Pérolas ou joias discretas",
		},
		Celebrities: []string{"Kate Middleton", "Amal Clooney", "Reese Witherspoon", "Gwyneth Paltrow"},
		Tips: []string{
			"Invista em peças de alfaiataria",
			"Mantenha as roupas sempre bem passadas",
			"Escolha acessórios de qualidade",
			"Prefira cortes clássicos e bem estruturados",
		},
	},
	"bohemian": {
		Key:         "bohemian",
		Name:        "Estilo Boêmio Criativo",
		Description: "Você é livre, criativa e expressiva. Seu estilo reflete sua personalidade artística e espírito aventureiro.",
		Characteristics: []string{
			"Adora experimentar e criar looks únicos",
			"Valoriza a expressão pessoal",
			"Gosta de texturas e estampas",
			"Prefere peças fluidas e confortáveis",
		},
		KeyPieces: []string{
			"Vestidos longos e fluidos",
			"Kimonos e cardigãs longos",
			"Calças palazzo ou pantalonas",
			"Blusas com bordados ou rendas",
			"Saias midi com movimento",
		},
		Colors: []string{
			"Tons terrosos: marrom, caramelo, mostarda",
			"Cores quentes: laranja, vermelho tijolo",
			"Neutros: creme, off-white",
			"Toques vibrantes: turquesa, roxo",
		},
		Accessories: []string{
			"Bolsas de palha ou couro artesanal",
			"Sandálias rasteiras ou botas",
			"Chapéus e lenços",
			"Joias étnicas e artesanais",
		},
		Celebrities: []string{"Sienna Miller", "Vanessa Hudgens", "Florence Welch", "Zoe Kravitz"},
		Tips: []string{
			"Misture texturas e estampas com confiança",
			"Aposte em peças vintage e brechós",
			"Use camadas para criar profundidade",
			"Deixe sua personalidade brilhar através das roupas",
		},
	},
	"minimal": {
		Key:         "minimal",
		Name:        "Estilo Minimalista Moderno",
		Description: "Você aprecia a simplicidade e a funcionalidade. Seu estilo é clean, moderno e sem excessos.",
		Characteristics: []string{
			"Prefere linhas limpas e simples",
			"Valoriza qualidade sobre quantidade",
			"Gosta de paleta de cores reduzida",
			"Aprecia design funcional",
		},
		KeyPieces: []string{
			"Camisetas básicas perfeitas",
			"Calças retas ou skinny",
			"Blazer sem lapela",
			"Vestidos de linha A",
			"Casacos de corte reto",
		},
		Colors: []string{
			"Monocromático: preto, branco, cinza",
			"Tons neutros: bege, nude",
			"Um toque de cor: azul marinho ou camel",
			"Evita estampas chamativas",
		},
		Accessories: []string{
			"Bolsas de linhas geométricas",
			"Sapatos de design clean",
			"Óculos de armação simples",
			"Joias geométricas ou ausência delas",
		},
		Celebrities: []string{"Phoebe Philo", "Tilda Swinton", "Céline Dion (fase atual)", "Victoria Beckham"},
		Tips: []string{
			"Invista em peças de corte perfeito",
			"Mantenha o guarda-roupa enxuto",
			"Foque na qualidade dos tecidos",
			"Crie looks através de proporções e texturas",
		},
	},
}

var paletteQuestions = []Question{
	{ID: 1, Question: "Qual cor você se sente mais confiante usando?", Options: []Option{
		{Text: "Azul marinho ou preto", Value: "cool-deep", Swatch: "bg-slate-800"},
		{Text: "Vermelho ou coral", Value: "warm-bright", Swatch: "bg-red-500"},
		{Text: "Bege ou caramelo", Value: "warm-soft", Swatch: "bg-amber-600"},
		{Text: "Rosa ou lilás", Value: "cool-soft", Swatch: "bg-pink-400"},
	}},
	{ID: 2, Question: "Como as pessoas descrevem sua pele?", Options: []Option{
		{Text: "Tom rosado ou avermelhado", Value: "cool", Swatch: "bg-rose-300"},
		{Text: "Tom dourado ou amarelado", Value: "warm", Swatch: "bg-yellow-300"},
		{Text: "Tom neutro (nem quente nem frio)", Value: "neutral", Swatch: "bg-gray-300"},
		{Text: "Tom oliváceo", Value: "olive", Swatch: "bg-green-300"},
	}},
	{ID: 3, Question: "Qual metal fica melhor em você?", Options: []Option{
		{Text: "Prata, platina ou ouro branco", Value: "cool", Swatch: "bg-gray-400"},
		{Text: "Ouro amarelo ou rose gold", Value: "warm", Swatch: "bg-yellow-500"},
		{Text: "Ambos ficam bem", Value: "neutral", Swatch: "bg-amber-400"},
		{Text: "Não uso muito acessórios", Value: "minimal", Swatch: "bg-gray-200"},
	}},
	{ID: 4, Question: "Qual cor de batom/gloss você prefere?", Options: []Option{
		{Text: "Rosa frio, berry ou vinho", Value: "cool", Swatch: "bg-purple-500"},
		{Text: "Coral, pêssego ou laranja", Value: "warm", Swatch: "bg-orange-400"},
		{Text: "Nude rosado ou marrom", Value: "neutral", Swatch: "bg-rose-400"},
		{Text: "Vermelho clássico", Value: "classic", Swatch: "bg-red-600"},
	}},
	{ID: 5, Question: "Que tipo de ambiente você prefere?", Options: []Option{
		{Text: "Minimalista e clean", Value: "minimal", Swatch: "bg-gray-100"},
		{Text: "Aconchegante e terroso", Value: "warm", Swatch: "bg-amber-700"},
		{Text: "Elegante e sofisticado", Value: "cool-deep", Swatch: "bg-slate-700"},
		{Text: "Vibrante e colorido", Value: "bright", Swatch: "bg-rainbow"},
	}},
	{ID: 6, Question: "Qual estação do ano você mais se identifica?", Options: []Option{
		{Text: "Inverno - cores intensas e contrastantes", Value: "winter", Swatch: "bg-blue-900"},
		{Text: "Verão - cores suaves e frias", Value: "summer", Swatch: "bg-blue-300"},
		{Text: "Outono - cores quentes e terrosas", Value: "autumn", Swatch: "bg-orange-600"},
		{Text: "Primavera - cores claras e vibrantes", Value: "spring", Swatch: "bg-green-400"},
	}},
}

var palettes = map[string]Palette{
	"cool-deep": {
		Key:         "cool-deep",
		Name:        "Inverno Profundo",
		Description: "Você tem uma beleza marcante que combina com cores intensas e contrastantes.",
		Colors:      Swatches{Primary: "#1e293b", Secondary: "#dc2626", Accent: "#7c3aed", Neutral: "#f8fafc", Complement: "#059669"},
		Characteristics: []string{
			"Contraste alto entre pele, cabelo e olhos",
			"Cores intensas realçam sua beleza natural",
			"Preto, branco e cores puras são suas aliadas",
		},
		Recommendations: []string{
			"Use preto, branco e cinza como base",
			"Adicione toques de vermelho, roxo ou azul royal",
			"Evite cores desbotadas ou muito suaves",
			"Aposte em contrastes marcantes",
		},
	},
	"cool-soft": {
		Key:         "cool-soft",
		Name:        "Verão Suave",
		Description: "Sua beleza é delicada e harmoniosa, combinando com tons suaves e frios.",
		Colors:      Swatches{Primary: "#64748b", Secondary: "#ec4899", Accent: "#8b5cf6", Neutral: "#f1f5f9", Complement: "#06b6d4"},
		Characteristics: []string{
			"Tom de pele frio com subtom rosado",
			"Cores suaves e acinzentadas são ideais",
			"Contraste médio a baixo",
		},
		Recommendations: []string{
			"Prefira azuis, rosas e roxos suaves",
			"Use cinza como neutro principal",
			"Evite cores muito vibrantes ou quentes",
			"Aposte em tons pastel e acinzentados",
		},
	},
	"warm-bright": {
		Key:         "warm-bright",
		Name:        "Primavera Radiante",
		Description: "Você irradia energia e vitalidade, combinando com cores quentes e vibrantes.",
		Colors:      Swatches{Primary: "#f59e0b", Secondary: "#ef4444", Accent: "#10b981", Neutral: "#fef3c7", Complement: "#3b82f6"},
		Characteristics: []string{
			"Tom de pele quente com subtom dourado",
			"Cores claras e vibrantes realçam sua energia",
			"Contraste médio com cores puras",
		},
		Recommendations: []string{
			"Use dourado, coral e verde como destaque",
			"Prefira creme e bege como neutros",
			"Evite cores muito escuras ou frias",
			"Aposte em tons vibrantes e energéticos",
		},
	},
	"warm-soft": {
		Key:         "warm-soft",
		Name:        "Outono Acolhedor",
		Description: "Sua beleza é rica e aconchegante, combinando com tons terrosos e dourados.",
		Colors:      Swatches{Primary: "#92400e", Secondary: "#dc2626", Accent: "#059669", Neutral: "#fef7ed", Complement: "#1d4ed8"},
		Characteristics: []string{
			"Tom de pele quente com subtom dourado",
			"Cores terrosas e ricas são perfeitas",
			"Contraste médio com tons profundos",
		},
		Recommendations: []string{
			"Use marrom, caramelo e dourado como base",
			"Adicione toques de vermelho tijolo ou verde musgo",
			"Evite cores muito frias ou neon",
			"Aposte em tons terrosos e aconchegantes",
		},
	},
}
