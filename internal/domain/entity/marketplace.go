package entity

import "time"

// Marketplace plataforma (Shopee, Tokopedia, TikTok Shop...). Agrupa tiendas.
type Marketplace struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Store tienda del vendedor dentro de un marketplace.
type Store struct {
	ID            string
	MarketplaceID string
	Name          string
	CreatedAt     time.Time
}
