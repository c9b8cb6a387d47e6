package catalog

// Seed returns a deep copy of the factory catalog: the dataset the
// storefront falls back to whenever the durable catalog key is absent,
// and the dataset a factory reset restores.
func Seed() *Catalog {
	return &Catalog{
		Company: Company{
			Name:       "Pizzarten",
			Slogan:     "Arte Comestible",
			FooterText: "© 2025 Pizzarten. Donde la cocina se encuentra con el diseño.",
		},
		Hero: Hero{
			Title:     "OBRAS DE ARTE RECIÉN HORNEADAS",
			Subtitle:  "Masa madre de 48 horas, ingredientes de autor y diseño en cada bocado.",
			CTAButton: "Ver Galería de Sabores",
		},
		Products: []Product{
			{
				ID:    1,
				Name:  "La Da Vinci",
				Desc:  "Prosciutto, rúcula fresca, parmesano reggiano y reducción de balsámico.",
				Price: 14.99,
				Img:   "assets/img/la-da-vinci.png",
			},
			{
				ID:    2,
				Name:  "Picasso Picante",
				Desc:  "Pepperoni doble, chorizo español, jalapeños y miel picante (hot honey).",
				Price: 13.50,
				Img:   "assets/img/picasso-picante.png",
			},
			{
				ID:    3,
				Name:  "Cuatro Quesos Abstracta",
				Desc:  "Gorgonzola, Mozzarella, Parmesano y Ricotta con toque de nuez.",
				Price: 12.00,
				Img:   "assets/img/cuatro-quesos.png",
			},
		},
		Bundles: []Bundle{
			{
				ID:    101,
				Title: "Dúo Creativo",
				Desc:  "2 Pizzas Medianas + 2 Bebidas Artesanales. Perfecto para compartir.",
				Price: 18.99,
				Badge: "BEST SELLER",
				Img:   "assets/img/duo-creativo.png",
			},
			{
				ID:    102,
				Title: "Banquete del Maestro",
				Desc:  "3 Pizzas Grandes + Pan de Ajo + Refresco 2L. La fiesta completa.",
				Price: 32.50,
				Badge: "FAMILIAR",
				Img:   "assets/img/banquete-maestro.png",
			},
		},
	}
}
