package search

import (
	"context"

	"esculapi/marketplace/domain"
)

// Fallback is the static in-process dataset substituted whenever the
// catalog source fails or answers empty. It exposes the same shapes as
// a live result, so the filter and sort stages are source-agnostic.
// The data mirrors the storefront's bundled demo catalog.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func promo(v float64) *float64 { return &v }

var fallbackProducts = []domain.Product{
	{ID: 1, Name: "Paracetamol 500mg", Description: "Analgésico e antitérmico", ActiveIngredient: "Paracetamol", Manufacturer: "EMS", Category: domain.CategoryOTC, Prescription: domain.PrescriptionNone},
	{ID: 2, Name: "Vitamina C 1000mg", Description: "Suplemento vitamínico", ActiveIngredient: "Ácido Ascórbico", Manufacturer: "Farmoquímica", Category: domain.CategoryOTC, Prescription: domain.PrescriptionNone},
	{ID: 3, Name: "Dipirona Sódica 500mg", Description: "Analgésico e antitérmico", ActiveIngredient: "Dipirona Sódica", Manufacturer: "Medley", Category: domain.CategoryOTC, Prescription: domain.PrescriptionNone},
	{ID: 4, Name: "Ibuprofeno 600mg", Description: "Anti-inflamatório", ActiveIngredient: "Ibuprofeno", Manufacturer: "Teuto", Category: domain.CategoryRegulated, Prescription: domain.PrescriptionPlain},
	{ID: 5, Name: "Rivotril 2mg", Description: "Ansiolítico e anticonvulsivante", ActiveIngredient: "Clonazepam", Manufacturer: "Roche", Category: domain.CategoryRegulated, Prescription: domain.PrescriptionControlledB},
}

var fallbackOffers = []domain.Offer{
	{ID: 1, ProductID: 1, PharmacyID: 1, ListPrice: 18.9, PromoPrice: promo(12.9), Quantity: 15, Active: true},
	{ID: 2, ProductID: 1, PharmacyID: 2, ListPrice: 14.9, Quantity: 8, Active: true},
	{ID: 3, ProductID: 1, PharmacyID: 3, ListPrice: 15.9, Quantity: 20, Active: true},
	{ID: 4, ProductID: 1, PharmacyID: 4, ListPrice: 16.9, PromoPrice: promo(13.9), Quantity: 12, Active: true},
	{ID: 5, ProductID: 2, PharmacyID: 1, ListPrice: 24.9, Quantity: 120, Active: true},
	{ID: 6, ProductID: 2, PharmacyID: 2, ListPrice: 32.0, PromoPrice: promo(26.5), Quantity: 40, Active: true},
	{ID: 7, ProductID: 3, PharmacyID: 1, ListPrice: 8.5, PromoPrice: promo(6.9), Quantity: 45, Active: true},
	{ID: 8, ProductID: 4, PharmacyID: 3, ListPrice: 22.9, PromoPrice: promo(15.9), Quantity: 30, Active: true},
	{ID: 9, ProductID: 5, PharmacyID: 4, ListPrice: 45.0, PromoPrice: promo(43.0), Quantity: 25, Active: true},
}

var fallbackPharmacies = []domain.Pharmacy{
	{
		ID: 1, DisplayName: "Farmácia Central", LegalName: "Farmácia Central Ltda",
		Address: domain.Address{Street: "Rua Principal", Number: "123", District: "Centro", City: "São Paulo", State: "SP", PostalCode: "01234-567"},
		Active: true, Approval: domain.ApprovalActive,
		Rating: 4.8, ReviewCount: 230, Distance: "2.5 km", DeliveryTime: "30-40 min",
		FastDelivery: true, Tags: []string{"verificada", "entrega grátis"},
	},
	{
		ID: 2, DisplayName: "Drogaria Popular", LegalName: "Drogaria Popular S/A",
		Address: domain.Address{Street: "Av. Comercial", Number: "456", District: "Jardim", City: "São Paulo", State: "SP", PostalCode: "09876-543"},
		Active: true, Approval: domain.ApprovalActive,
		Rating: 4.6, ReviewCount: 145, Distance: "3.2 km", DeliveryTime: "35-45 min",
	},
	{
		ID: 3, DisplayName: "Farmácia São Paulo", LegalName: "Farmácia São Paulo ME",
		Address: domain.Address{Street: "Rua das Flores", Number: "88", District: "Centro", City: "São Paulo", State: "SP", PostalCode: "01310-100"},
		Active: true, Approval: domain.ApprovalActive,
		Rating: 4.9, ReviewCount: 312, Distance: "1.8 km", DeliveryTime: "25-35 min",
		FastDelivery: true,
	},
	{
		ID: 4, DisplayName: "Drogasil", LegalName: "Drogasil S/A",
		Address: domain.Address{Street: "Av. Paulista", Number: "1000", District: "Bela Vista", City: "São Paulo", State: "SP", PostalCode: "01311-000"},
		Active: true, Approval: domain.ApprovalActive,
		Rating: 4.5, ReviewCount: 98, Distance: "4.5 km", DeliveryTime: "45-55 min",
		Closed: true,
	},
}

var fallbackTopics = []domain.Topic{
	{ID: 1, Title: "Como fazer um pedido", Body: "Navegue pelo catálogo, adicione produtos ao carrinho, revise e confirme o pedido.", Category: "pedidos", Tags: []string{"pedido", "comprar", "carrinho"}, ViewCount: 245, HelpfulCount: 89, ManualOrder: 1},
	{ID: 2, Title: "Formas de pagamento aceitas", Body: "Aceitamos cartão de crédito, cartão de débito, PIX e boleto bancário.", Category: "pagamento", Tags: []string{"pagamento", "cartão", "pix", "boleto"}, ViewCount: 198, HelpfulCount: 72, ManualOrder: 2},
	{ID: 3, Title: "Como rastrear minha entrega", Body: "Acesse Meus Pedidos, selecione o pedido e clique em Rastrear Entrega.", Category: "entrega", Tags: []string{"rastreio", "entrega", "acompanhar"}, ViewCount: 312, HelpfulCount: 124, ManualOrder: 3},
	{ID: 4, Title: "Política de devolução e reembolso", Body: "Produtos podem ser devolvidos em até 7 dias após o recebimento.", Category: "devolucao", Tags: []string{"devolução", "reembolso", "trocar"}, ViewCount: 156, HelpfulCount: 54, ManualOrder: 4},
	{ID: 5, Title: "Como alterar meus dados cadastrais", Body: "Acesse Minha Conta, edite o perfil e salve as alterações.", Category: "conta", Tags: []string{"conta", "perfil", "dados"}, ViewCount: 89, HelpfulCount: 32, ManualOrder: 5},
	{ID: 6, Title: "Como alterar minha senha", Body: "Acesse Minha Conta, informe a senha atual e escolha uma nova com ao menos 8 caracteres.", Category: "conta", Tags: []string{"senha", "segurança"}, ViewCount: 67, HelpfulCount: 28, ManualOrder: 6},
}

// Products returns a copy of the bundled product catalog.
func (f *Fallback) Products() []domain.Product {
	out := make([]domain.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

// Offers returns a copy of the bundled offer listings.
func (f *Fallback) Offers() []domain.Offer {
	out := make([]domain.Offer, len(fallbackOffers))
	copy(out, fallbackOffers)
	return out
}

// Pharmacies returns a copy of the bundled pharmacy list.
func (f *Fallback) Pharmacies() []domain.Pharmacy {
	out := make([]domain.Pharmacy, len(fallbackPharmacies))
	copy(out, fallbackPharmacies)
	return out
}

// Topics returns a copy of the bundled help topics.
func (f *Fallback) Topics() []domain.Topic {
	out := make([]domain.Topic, len(fallbackTopics))
	copy(out, fallbackTopics)
	return out
}

// FetchProducts implements CatalogSource so the fallback can stand in
// for a dead remote end to end. It never fails.
func (f *Fallback) FetchProducts(ctx context.Context) ([]domain.Product, []domain.Offer, error) {
	return f.Products(), f.Offers(), nil
}

func (f *Fallback) SearchAll(ctx context.Context, query string) (Results, error) {
	return Results{Products: f.Products(), Pharmacies: f.Pharmacies()}, nil
}

func (f *Fallback) FetchTopics(ctx context.Context) ([]domain.Topic, error) {
	return f.Topics(), nil
}
